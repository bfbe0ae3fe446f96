package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/youssefrramdan/care-insight-api/internal/config"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/internal/services"
	"github.com/youssefrramdan/care-insight-api/pkg/logger"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

type registerRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Gender      string `json:"gender" binding:"required,oneof=male female"`
	Password    string `json:"password" binding:"required,min=8"`

	// Patient medical profile
	Age                int      `json:"age"`
	Height             int      `json:"height"`
	Weight             int      `json:"weight"`
	BloodType          string   `json:"bloodType"`
	MedicalCondition   string   `json:"medicalCondition"`
	ChronicDiseases    []string `json:"chronicDiseases"`
	CurrentMedications []string `json:"currentMedications"`
}

type registerDoctorRequest struct {
	FullName       string               `json:"fullName" binding:"required"`
	Email          string               `json:"email" binding:"required,email"`
	PhoneNumber    string               `json:"phoneNumber" binding:"required"`
	Gender         string               `json:"gender" binding:"required,oneof=male female"`
	Password       string               `json:"password" binding:"required,min=8"`
	SpecialtyID    string               `json:"specialtyId" binding:"required"`
	ClinicLocation string               `json:"clinicLocation"`
	Certifications []string             `json:"certifications"`
	WorkingHours   []models.WorkingHour `json:"workingHours"`
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(hash), err
}

func sendVerificationEmail(user *models.User) {
	token, err := utils.GenerateVerificationToken(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate verification token")
		return
	}
	services.SendEmailAsync(user.Email, "Verification Email",
		utils.VerificationEmailHTML(config.AppConfig.FrontendURL, token))
}

// Register creates a patient account
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already in use"})
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := models.User{
		ID:                 utils.GenerateID(),
		FullName:           req.FullName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Gender:             models.Gender(req.Gender),
		Password:           hash,
		Role:               models.RolePatient,
		Age:                req.Age,
		Height:             req.Height,
		Weight:             req.Weight,
		BloodType:          req.BloodType,
		MedicalCondition:   req.MedicalCondition,
		ChronicDiseases:    req.ChronicDiseases,
		CurrentMedications: req.CurrentMedications,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	sendVerificationEmail(&user)

	token, _ := utils.GenerateToken(user.ID, string(user.Role))
	c.JSON(http.StatusCreated, gin.H{
		"message": "success",
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"role":     user.Role,
			"fullName": user.FullName,
		},
		"token": token,
	})
}

// RegisterDoctor creates a doctor account with specialty and schedule
func RegisterDoctor(c *gin.Context) {
	var req registerDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already in use"})
		return
	}

	var specialty models.Specialty
	if err := database.DB.First(&specialty, "id = ?", req.SpecialtyID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Specialty not found"})
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	for i := range req.WorkingHours {
		req.WorkingHours[i].ID = utils.GenerateID()
	}

	user := models.User{
		ID:             utils.GenerateID(),
		FullName:       req.FullName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Gender:         models.Gender(req.Gender),
		Password:       hash,
		Role:           models.RoleDoctor,
		SpecialtyID:    &req.SpecialtyID,
		ClinicLocation: req.ClinicLocation,
		Certifications: req.Certifications,
		WorkingHours:   req.WorkingHours,
	}
	user.RecomputeAvailability()

	if err := database.DB.Create(&user).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create doctor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	sendVerificationEmail(&user)

	token, _ := utils.GenerateToken(user.ID, string(user.Role))
	c.JSON(http.StatusCreated, gin.H{
		"message": "success",
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"role":         user.Role,
			"fullName":     user.FullName,
			"availability": user.Availability,
		},
		"token": token,
	})
}

// Login authenticates by email and password
func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"user": gin.H{
			"id":       user.ID,
			"fullName": user.FullName,
			"email":    user.Email,
			"role":     user.Role,
		},
		"token": token,
		// The frontend connects to /socket.io with this id as the
		// handshake query parameter
		"socketInfo": gin.H{
			"userId": user.ID,
		},
	})
}

// ConfirmEmail marks the account in the token as verified
func ConfirmEmail(c *gin.Context) {
	claims, err := utils.ValidateToken(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Email verification failed"})
		return
	}

	result := database.DB.Model(&models.User{}).
		Where("id = ?", claims.UserID).
		Update("is_verified", true)
	if result.Error != nil || result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// ForgotPassword emails a hashed 6-digit reset code valid for 10 minutes
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
		return
	}

	// Throttle OTP mail per account on top of the IP limiter
	allowed, err := database.CheckRateLimit("otp:"+user.ID, 3, time.Hour)
	if err != nil {
		logger.Error().Err(err).Str("userId", user.ID).Msg("OTP rate limit check failed")
	} else if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many reset requests, try again later"})
		return
	}

	resetCode := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	hashedCode, err := bcrypt.GenerateFromPassword([]byte(resetCode), 12)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reset code"})
		return
	}

	expires := time.Now().Add(10 * time.Minute)
	err = database.DB.Model(&user).Updates(map[string]interface{}{
		"password_reset_code":     string(hashedCode),
		"password_reset_expires":  expires,
		"password_reset_verified": false,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store reset code"})
		return
	}

	services.SendEmailAsync(user.Email, "OTP Email", utils.OTPEmailHTML(resetCode))

	c.JSON(http.StatusOK, gin.H{"message": "Reset code sent successfully"})
}

// VerifyResetCode checks the emailed code against the stored hash
func VerifyResetCode(c *gin.Context) {
	var req struct {
		Email     string `json:"email" binding:"required,email"`
		ResetCode string `json:"resetCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := database.DB.Where("email = ? AND password_reset_expires > ?", req.Email, time.Now()).
		First(&user).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reset code is invalid or has expired"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordResetCode), []byte(req.ResetCode)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reset code"})
		return
	}

	database.DB.Model(&user).Update("password_reset_verified", true)

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// ResetPassword sets a new password after the code was verified
func ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
		return
	}

	if !user.PasswordResetVerified {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reset code has not been verified"})
		return
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	now := time.Now()
	err = database.DB.Model(&user).Updates(map[string]interface{}{
		"password":                hash,
		"password_reset_code":     "",
		"password_reset_expires":  gorm.Expr("NULL"),
		"password_reset_verified": false,
		"password_changed_at":     now,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	token, _ := utils.GenerateToken(user.ID, string(user.Role))
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"userData": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

// Logout revokes the current token until it would have expired anyway
func Logout(c *gin.Context) {
	claims := c.MustGet("claims").(*utils.Claims)

	ttl := 7 * 24 * time.Hour
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl > 0 {
		if err := database.BlacklistToken(claims.GetJTI(), ttl); err != nil {
			logger.Warn().Err(err).Msg("Failed to blacklist token on logout")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
