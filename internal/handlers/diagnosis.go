package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/config"
	"github.com/youssefrramdan/care-insight-api/internal/services"
)

func modelURL(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}

// predictFromUpload stores the uploaded scan and forwards its URL to an
// image-based diagnosis model.
func predictFromUpload(c *gin.Context, modelEndpoint, imageKey string) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	defer file.Close()

	imageURL, err := UploadToStorage(file, header, "diagnosis")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	result, err := services.PredictFromImage(modelEndpoint, imageKey, imageURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Prediction service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": result})
}

func BreastCancer(c *gin.Context) {
	predictFromUpload(c, modelURL(config.AppConfig.BreastModelURL, services.DefaultBreastModelURL), "image_url")
}

func BrainCancer(c *gin.Context) {
	predictFromUpload(c, modelURL(config.AppConfig.BrainModelURL, services.DefaultBrainModelURL), "image_url")
}

func SkinCancer(c *gin.Context) {
	// The skin model expects "url" instead of "image_url"
	predictFromUpload(c, modelURL(config.AppConfig.SkinModelURL, services.DefaultSkinModelURL), "url")
}

// GeneClassify forwards a gene/variation/text triple to the classifier
func GeneClassify(c *gin.Context) {
	var req services.GeneClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Gene == "" || req.Variation == "" || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing required fields: gene, variation, and text are required",
		})
		return
	}

	result, err := services.ClassifyGene(modelURL(config.AppConfig.GeneModelURL, services.DefaultGeneModelURL), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Prediction service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": result})
}
