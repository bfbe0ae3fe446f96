package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/logger"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

// GetMe returns the current user's full profile
func GetMe(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var user models.User
	err := database.DB.
		Preload("Specialty").
		Preload("WorkingHours").
		Preload("MedicalDocuments").
		First(&user, "id = ?", userId).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": user})
}

// UpdateMe updates the current user's profile. Only the fields appropriate
// for the user's role are accepted; everything else in the body is ignored.
func UpdateMe(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	role := c.MustGet("userRole").(string)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	patientFields := map[string]string{
		"fullName": "full_name", "email": "email", "phoneNumber": "phone_number",
		"gender": "gender", "age": "age", "height": "height", "weight": "weight",
		"bloodType": "blood_type", "medicalCondition": "medical_condition",
	}
	doctorFields := map[string]string{
		"fullName": "full_name", "email": "email", "phoneNumber": "phone_number",
		"gender": "gender", "specialtyId": "specialty_id", "workPlace": "work_place",
		"clinicLocation": "clinic_location", "professionalBio": "professional_bio",
		"yearsOfExperience": "years_of_experience",
	}

	allowed := patientFields
	if role == string(models.RoleDoctor) {
		allowed = doctorFields
	}

	updates := map[string]interface{}{}
	for key, column := range allowed {
		if v, ok := body[key]; ok {
			updates[column] = v
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userId).Updates(updates).Error; err != nil {
		logger.Error().Err(err).Str("userId", userId).Msg("Failed to update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	var user models.User
	database.DB.Preload("Specialty").First(&user, "id = ?", userId)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// UpdateWorkingHours replaces a doctor's weekly schedule and regenerates the
// derived availability day list.
func UpdateWorkingHours(c *gin.Context) {
	doctorId := c.MustGet("userId").(string)

	var req struct {
		WorkingHours []models.WorkingHour `json:"workingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Working hours must be provided as an array"})
		return
	}

	validDays := map[string]bool{
		"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
		"Friday": true, "Saturday": true, "Sunday": true,
	}
	for _, wh := range req.WorkingHours {
		bothOrNeither := (wh.From != "" && wh.To != "") || (wh.From == "" && wh.To == "")
		if !validDays[wh.Day] || !bothOrNeither {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid working hours format. Each item must have day and both from and to if the day is available"})
			return
		}
	}

	var doctor models.User
	if err := database.DB.First(&doctor, "id = ?", doctorId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	// Replace the schedule wholesale
	if err := database.DB.Where("doctor_id = ?", doctorId).Delete(&models.WorkingHour{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update working hours"})
		return
	}
	for i := range req.WorkingHours {
		req.WorkingHours[i].ID = utils.GenerateID()
		req.WorkingHours[i].DoctorID = doctorId
	}
	if len(req.WorkingHours) > 0 {
		if err := database.DB.Create(&req.WorkingHours).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update working hours"})
			return
		}
	}

	doctor.WorkingHours = req.WorkingHours
	doctor.RecomputeAvailability()
	database.DB.Model(&doctor).Update("availability", doctor.Availability)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Working hours updated successfully",
		"data": gin.H{
			"workingHours": doctor.WorkingHours,
			"availability": doctor.Availability,
		},
	})
}

// GetAllDoctors is the public doctor directory
func GetAllDoctors(c *gin.Context) {
	var doctors []models.User
	err := database.DB.
		Preload("Specialty").
		Preload("WorkingHours").
		Where("role = ?", models.RoleDoctor).
		Find(&doctors).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"results": len(doctors),
		"data":    doctors,
	})
}

// UploadUserImage sets the current user's profile image
func UploadUserImage(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	file, header, err := c.Request.FormFile("profileImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload profile image"})
		return
	}
	defer file.Close()

	url, err := UploadToStorage(file, header, "users")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userId).Update("profile_image", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "profileImage": url})
}

// UploadMedicalDocuments appends uploaded files to the patient's documents
func UploadMedicalDocuments(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	form, err := c.MultipartForm()
	if err != nil || len(form.File["medicalDocuments"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload medical documents"})
		return
	}

	headers := form.File["medicalDocuments"]
	if len(headers) > 5 {
		headers = headers[:5]
	}

	docs := make([]models.MedicalDocument, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			continue
		}
		url, err := UploadToStorage(file, header, "users")
		file.Close()
		if err != nil {
			logger.Error().Err(err).Str("file", header.Filename).Msg("Failed to upload medical document")
			continue
		}
		docs = append(docs, models.MedicalDocument{
			ID:       utils.GenerateID(),
			UserID:   userId,
			FileName: header.Filename,
			FileURL:  url,
		})
	}

	if len(docs) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store medical documents"})
		return
	}

	if err := database.DB.Create(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store medical documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "medicalDocuments": docs})
}

// GetMedicalDocuments lists the current user's uploaded documents
func GetMedicalDocuments(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var docs []models.MedicalDocument
	if err := database.DB.Where("user_id = ?", userId).Find(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medical documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"results": len(docs),
		"data":    docs,
	})
}

// ChangeMyPassword rotates the current user's password
func ChangeMyPassword(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		Password        string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	now := time.Now()
	err = database.DB.Model(&user).Updates(map[string]interface{}{
		"password":            hash,
		"password_changed_at": now,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	token, _ := utils.GenerateToken(user.ID, string(user.Role))
	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
		"token":   token,
	})
}

// -- Admin user management -- //

// GetUser returns a user profile by id, with specialty and reviews resolved
func GetUser(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var user models.User
	err := database.DB.
		Preload("Specialty").
		Preload("WorkingHours").
		First(&user, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "There isn't a user for this " + id})
		return
	}

	var reviews []models.Review
	database.DB.Preload("Patient").Where("doctor_id = ?", id).Order("created_at desc").Find(&reviews)

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    user,
		"reviews": reviews,
	})
}

// GetAllUsers lists users, optionally filtered by specialty
func GetAllUsers(c *gin.Context) {
	query := database.DB.Preload("Specialty")
	if specialtyId := c.Query("specialtyId"); specialtyId != "" {
		query = query.Where("specialty_id = ?", specialtyId)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"results": len(users),
		"users":   users,
	})
}

// DeleteUser removes a user account (admin only)
func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	result := database.DB.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "There isn't a user for this " + id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
