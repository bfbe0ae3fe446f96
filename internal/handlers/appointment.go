package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

// canAccessAppointment reports whether the user may act on the appointment.
func canAccessAppointment(a *models.Appointment, userId, role string) bool {
	return role == string(models.RoleAdmin) || a.PatientID == userId || a.DoctorID == userId
}

// CreateAppointment books an appointment with a doctor
func CreateAppointment(c *gin.Context) {
	patientId := c.MustGet("userId").(string)

	var req struct {
		Doctor          string    `json:"doctor" binding:"required"`
		AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
		ReasonForVisit  string    `json:"reasonForVisit" binding:"required"`
		Notes           string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AppointmentDate.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment date must be in the future"})
		return
	}

	var doctor models.User
	if err := database.DB.Where("id = ? AND role = ?", req.Doctor, models.RoleDoctor).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	appointment := models.Appointment{
		ID:              utils.GenerateID(),
		DoctorID:        req.Doctor,
		PatientID:       patientId,
		AppointmentDate: req.AppointmentDate,
		ReasonForVisit:  req.ReasonForVisit,
		Notes:           req.Notes,
		Status:          models.AppointmentPending,
	}

	if err := database.DB.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"appointment": appointment},
	})
}

// GetAllAppointments lists the caller's appointments. ?type=upcoming|past
// filters by date; upcoming excludes cancelled ones.
func GetAllAppointments(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)

	query := database.DB.Preload("Doctor").Preload("Doctor.Specialty").Preload("Patient")

	switch role {
	case string(models.RoleDoctor):
		query = query.Where("doctor_id = ?", userId)
	case string(models.RolePatient):
		query = query.Where("patient_id = ?", userId)
	}

	switch c.Query("type") {
	case "upcoming":
		query = query.Where("appointment_date > ? AND status <> ?", time.Now(), models.AppointmentCancelled).
			Order("appointment_date asc")
	case "past":
		query = query.Where("appointment_date < ?", time.Now()).
			Order("appointment_date desc")
	default:
		query = query.Order("appointment_date desc")
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(appointments),
		"data":    gin.H{"appointments": appointments},
	})
}

// GetAppointmentByID returns one appointment the caller participates in
func GetAppointmentByID(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)

	var appointment models.Appointment
	err := database.DB.Preload("Doctor").Preload("Patient").Preload("UploadedFiles").
		First(&appointment, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No appointment found with that ID"})
		return
	}

	if !canAccessAppointment(&appointment, userId, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to view this appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"appointment": appointment},
	})
}

// CancelAppointment marks an appointment cancelled
func CancelAppointment(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No appointment found with that ID"})
		return
	}

	if !canAccessAppointment(&appointment, userId, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to cancel this appointment"})
		return
	}

	appointment.Status = models.AppointmentCancelled
	if err := database.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"appointment": appointment},
	})
}

// ConfirmAppointment moves a pending appointment to confirmed (assigned
// doctor only)
func ConfirmAppointment(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No appointment found with that ID"})
		return
	}

	if role != string(models.RoleDoctor) || appointment.DoctorID != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the assigned doctor can confirm this appointment"})
		return
	}

	if appointment.Status != models.AppointmentPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment is already " + string(appointment.Status)})
		return
	}

	appointment.Status = models.AppointmentConfirmed
	if err := database.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"appointment": appointment},
	})
}

// CompleteAppointment closes a confirmed appointment with medical notes
// (assigned doctor only)
func CompleteAppointment(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)

	var req struct {
		Diagnosis      string     `json:"diagnosis"`
		Prescription   string     `json:"prescription"`
		FollowUpNeeded bool       `json:"followUpNeeded"`
		FollowUpDate   *time.Time `json:"followUpDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No appointment found with that ID"})
		return
	}

	if role != string(models.RoleDoctor) || appointment.DoctorID != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the assigned doctor can complete this appointment"})
		return
	}

	if appointment.Status != models.AppointmentConfirmed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only confirmed appointments can be completed"})
		return
	}

	now := time.Now()
	appointment.Status = models.AppointmentCompleted
	appointment.Diagnosis = req.Diagnosis
	appointment.Prescription = req.Prescription
	appointment.FollowUpNeeded = req.FollowUpNeeded
	appointment.CompletedAt = &now
	if req.FollowUpNeeded {
		appointment.FollowUpDate = req.FollowUpDate
	}

	if err := database.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"appointment": appointment},
	})
}

// UploadAppointmentFiles attaches files to an appointment
func UploadAppointmentFiles(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ?", c.Param("appointmentId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No appointment found with that ID"})
		return
	}

	if !canAccessAppointment(&appointment, userId, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to upload files for this appointment"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload at least one file"})
		return
	}

	files := make([]models.AppointmentFile, 0, len(form.File["files"]))
	for _, header := range form.File["files"] {
		file, err := header.Open()
		if err != nil {
			continue
		}
		url, err := UploadToStorage(file, header, "appointments")
		file.Close()
		if err != nil {
			continue
		}
		files = append(files, models.AppointmentFile{
			ID:            utils.GenerateID(),
			AppointmentID: appointment.ID,
			FileName:      header.Filename,
			FileURL:       url,
			FileType:      header.Header.Get("Content-Type"),
		})
	}

	if len(files) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded files"})
		return
	}

	if err := database.DB.Create(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded files"})
		return
	}

	database.DB.Preload("UploadedFiles").First(&appointment, "id = ?", appointment.ID)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"appointment": appointment},
	})
}

// GetDoctorAvailability returns the booked slots of a doctor on a given day
func GetDoctorAvailability(c *gin.Context) {
	doctorId := c.Query("doctorId")
	date := c.Query("date")
	if doctorId == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctorId and date are required"})
		return
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	startOfDay := day
	endOfDay := day.Add(24*time.Hour - time.Nanosecond)

	var booked []models.Appointment
	err = database.DB.Select("appointment_date").
		Where("doctor_id = ? AND appointment_date BETWEEN ? AND ? AND status <> ?",
			doctorId, startOfDay, endOfDay, models.AppointmentCancelled).
		Find(&booked).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}

	slots := make([]time.Time, 0, len(booked))
	for _, a := range booked {
		slots = append(slots, a.AppointmentDate)
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"bookedSlots": slots},
	})
}
