package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

const specialtiesCacheKey = "specialties:all"

// GetAllSpecialties is public and cached; the list changes rarely.
func GetAllSpecialties(c *gin.Context) {
	var specialties []models.Specialty
	if err := database.CacheGet(specialtiesCacheKey, &specialties); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "success", "data": specialties})
		return
	}

	if err := database.DB.Find(&specialties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch specialties"})
		return
	}

	for i := range specialties {
		database.DB.Model(&models.User{}).
			Where("role = ? AND specialty_id = ?", models.RoleDoctor, specialties[i].ID).
			Count(&specialties[i].DoctorsCount)
	}

	database.CacheSet(specialtiesCacheKey, specialties, 10*time.Minute)

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": specialties})
}

// GetSpecialty returns one specialty by id
func GetSpecialty(c *gin.Context) {
	id := c.Param("id")

	var specialty models.Specialty
	if err := database.DB.First(&specialty, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "There isn't a specialty for this ID: " + id})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": specialty})
}

// CreateSpecialty adds a specialty (admin only)
func CreateSpecialty(c *gin.Context) {
	specialty := models.Specialty{
		ID:          utils.GenerateID(),
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	if len(specialty.Name) < 3 || len(specialty.Name) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Specialty name must be between 3 and 50 characters"})
		return
	}

	if file, header, err := c.Request.FormFile("imageCover"); err == nil {
		defer file.Close()
		url, err := UploadToStorage(file, header, "specialties")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload cover image"})
			return
		}
		specialty.ImageCover = url
	}

	if err := database.DB.Create(&specialty).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create specialty"})
		return
	}

	database.CacheInvalidate(specialtiesCacheKey)

	c.JSON(http.StatusCreated, gin.H{"message": "success", "data": specialty})
}

// UpdateSpecialty edits a specialty (admin only)
func UpdateSpecialty(c *gin.Context) {
	id := c.Param("id")

	var specialty models.Specialty
	if err := database.DB.First(&specialty, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "There isn't a specialty for this ID: " + id})
		return
	}

	if name := c.PostForm("name"); name != "" {
		specialty.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		specialty.Description = description
	}
	if file, header, err := c.Request.FormFile("imageCover"); err == nil {
		defer file.Close()
		url, err := UploadToStorage(file, header, "specialties")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload cover image"})
			return
		}
		specialty.ImageCover = url
	}

	if err := database.DB.Save(&specialty).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update specialty"})
		return
	}

	database.CacheInvalidate(specialtiesCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": specialty})
}

// DeleteSpecialty removes a specialty (admin only)
func DeleteSpecialty(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Delete(&models.Specialty{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete specialty"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "There isn't a specialty for this ID: " + id})
		return
	}

	database.CacheInvalidate(specialtiesCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
