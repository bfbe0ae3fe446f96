package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

// CreateMedicalRecord files a record for a completed appointment (doctor only)
func CreateMedicalRecord(c *gin.Context) {
	doctorId := c.MustGet("userId").(string)

	var req struct {
		PatientID       string                    `json:"patientId" binding:"required"`
		AppointmentID   string                    `json:"appointmentId" binding:"required"`
		Diagnosis       string                    `json:"diagnosis" binding:"required"`
		Symptoms        []string                  `json:"symptoms"`
		Medications     []models.RecordMedication `json:"medications"`
		Recommendations []string                  `json:"recommendations"`
		FollowUp        struct {
			Required bool   `json:"required"`
			Date     string `json:"date"`
			Notes    string `json:"notes"`
		} `json:"followUp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ?", req.AppointmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No appointment found with that ID"})
		return
	}
	if appointment.DoctorID != doctorId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the assigned doctor can file this record"})
		return
	}

	for i := range req.Medications {
		req.Medications[i].ID = utils.GenerateID()
	}

	record := models.MedicalRecord{
		ID:               utils.GenerateID(),
		PatientID:        req.PatientID,
		DoctorID:         doctorId,
		AppointmentID:    req.AppointmentID,
		Diagnosis:        req.Diagnosis,
		Symptoms:         req.Symptoms,
		Medications:      req.Medications,
		Recommendations:  req.Recommendations,
		FollowUpRequired: req.FollowUp.Required,
		FollowUpNotes:    req.FollowUp.Notes,
	}

	if err := database.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create medical record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"medicalRecord": record},
	})
}

// GetAllMedicalRecords lists every record (admin only)
func GetAllMedicalRecords(c *gin.Context) {
	var records []models.MedicalRecord
	err := database.DB.
		Preload("Patient").Preload("Doctor").Preload("Doctor.Specialty").Preload("Appointment").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medical records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(records),
		"data":    gin.H{"medicalRecords": records},
	})
}

// GetPatientMedicalRecords lists one patient's records
func GetPatientMedicalRecords(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)
	patientId := c.Param("patientId")

	// Doctors may only read records of patients they have treated
	if role == string(models.RoleDoctor) {
		var count int64
		database.DB.Model(&models.MedicalRecord{}).
			Where("doctor_id = ? AND patient_id = ?", userId, patientId).
			Count(&count)
		if count == 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this patient's records"})
			return
		}
	}

	var records []models.MedicalRecord
	err := database.DB.
		Preload("Doctor").Preload("Doctor.Specialty").Preload("Appointment").
		Where("patient_id = ?", patientId).
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medical records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(records),
		"data":    gin.H{"medicalRecords": records},
	})
}

// GetMyMedicalRecords lists the caller's records (as patient or doctor) with
// optional keyword search over diagnosis, visit reason, and names
func GetMyMedicalRecords(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)

	query := database.DB.Model(&models.MedicalRecord{}).
		Joins("JOIN appointments ON appointments.id = medical_records.appointment_id").
		Joins("JOIN users AS patients ON patients.id = medical_records.patient_id").
		Joins("JOIN users AS doctors ON doctors.id = medical_records.doctor_id")

	if role == string(models.RoleDoctor) {
		query = query.Where("medical_records.doctor_id = ?", userId)
	} else {
		query = query.Where("medical_records.patient_id = ?", userId)
	}

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"medical_records.diagnosis ILIKE ? OR appointments.reason_for_visit ILIKE ? OR patients.full_name ILIKE ? OR doctors.full_name ILIKE ?",
			like, like, like, like,
		)
	}

	var records []models.MedicalRecord
	err := query.
		Preload("Patient").Preload("Doctor").Preload("Doctor.Specialty").Preload("Appointment").
		Order("appointments.appointment_date desc").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medical records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(records),
		"data":    records,
	})
}

// GetMedicalRecord returns one record with all relations resolved
func GetMedicalRecord(c *gin.Context) {
	var record models.MedicalRecord
	err := database.DB.
		Preload("Patient").Preload("Doctor").Preload("Doctor.Specialty").
		Preload("Appointment").Preload("Medications").Preload("Attachments").
		First(&record, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No medical record found with that ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"medicalRecord": record},
	})
}
