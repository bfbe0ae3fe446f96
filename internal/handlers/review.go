package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/internal/services"
	"github.com/youssefrramdan/care-insight-api/pkg/logger"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

// CreateReview adds a patient's review of a doctor. One review per pair.
func CreateReview(c *gin.Context) {
	patientId := c.MustGet("userId").(string)

	var req struct {
		DoctorID string `json:"doctorId" binding:"required"`
		Rating   int    `json:"rating" binding:"required,min=1,max=5"`
		Comment  string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var doctor models.User
	if err := database.DB.Where("id = ? AND role = ?", req.DoctorID, models.RoleDoctor).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	var existing models.Review
	if err := database.DB.Where("doctor_id = ? AND patient_id = ?", req.DoctorID, patientId).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already submitted a review for this doctor"})
		return
	}

	review := models.Review{
		ID:        utils.GenerateID(),
		DoctorID:  req.DoctorID,
		PatientID: patientId,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	if err := services.RecalculateDoctorRating(req.DoctorID); err != nil {
		logger.Error().Err(err).Str("doctorId", req.DoctorID).Msg("Failed to recalculate doctor rating")
	}

	database.DB.Preload("Patient").First(&review, "id = ?", review.ID)

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"review": review},
	})
}

// GetDoctorReviews lists all reviews for a doctor
func GetDoctorReviews(c *gin.Context) {
	doctorId := c.Param("doctorId")

	var doctor models.User
	if err := database.DB.Where("id = ? AND role = ?", doctorId, models.RoleDoctor).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	var reviews []models.Review
	if err := database.DB.Preload("Patient").Where("doctor_id = ?", doctorId).Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(reviews),
		"data":    gin.H{"reviews": reviews},
	})
}

// UpdateReview edits the caller's own review
func UpdateReview(c *gin.Context) {
	patientId := c.MustGet("userId").(string)

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var review models.Review
	if err := database.DB.Where("id = ? AND patient_id = ?", c.Param("reviewId"), patientId).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found or not authorized"})
		return
	}

	if req.Rating >= 1 && req.Rating <= 5 {
		review.Rating = req.Rating
	}
	if req.Comment != "" {
		review.Comment = req.Comment
	}

	if err := database.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	if err := services.RecalculateDoctorRating(review.DoctorID); err != nil {
		logger.Error().Err(err).Str("doctorId", review.DoctorID).Msg("Failed to recalculate doctor rating")
	}

	database.DB.Preload("Patient").First(&review, "id = ?", review.ID)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"review": review},
	})
}

// DeleteReview removes the caller's own review
func DeleteReview(c *gin.Context) {
	patientId := c.MustGet("userId").(string)

	var review models.Review
	if err := database.DB.Where("id = ? AND patient_id = ?", c.Param("reviewId"), patientId).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found or not authorized"})
		return
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	if err := services.RecalculateDoctorRating(review.DoctorID); err != nil {
		logger.Error().Err(err).Str("doctorId", review.DoctorID).Msg("Failed to recalculate doctor rating")
	}

	c.JSON(http.StatusNoContent, nil)
}
