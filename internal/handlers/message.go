package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/internal/services"
	"github.com/youssefrramdan/care-insight-api/pkg/logger"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

// GetUsersForSidebar returns the inbox view: one entry per counterparty the
// current user has exchanged messages with, most recent conversation first.
func GetUsersForSidebar(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	summaries, err := services.GetConversationSummaries(userId)
	if err != nil {
		logger.Error().Err(err).Str("userId", userId).Msg("Failed to build conversation summaries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// SendMessage persists a direct message to the user in the path parameter.
// The body carries an optional text field and an optional image; at least one
// must be present.
func SendMessage(c *gin.Context) {
	senderId := c.MustGet("userId").(string)
	receiverId := c.Param("id")

	text := c.PostForm("text")
	image := ""

	// Optional image attachment, stored in object storage
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		url, err := UploadToStorage(file, header, "messages")
		if err != nil {
			logger.Error().Err(err).Msg("Failed to upload message image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		image = url
	}

	// JSON bodies carry the fields directly instead of multipart form data
	if text == "" && image == "" && c.ContentType() == "application/json" {
		var req struct {
			Text  string `json:"text"`
			Image string `json:"image"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			text = req.Text
			image = req.Image
		}
	}

	if text == "" && image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A message must have text or an image"})
		return
	}

	// Both participants must resolve to known users
	var count int64
	if err := database.DB.Model(&models.User{}).
		Where("id IN ?", []string{senderId, receiverId}).
		Count(&count).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to look up message participants")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "There is an error creating message"})
		return
	}
	expected := int64(2)
	if senderId == receiverId {
		expected = 1
	}
	if count < expected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Receiver not found"})
		return
	}

	msg := models.Message{
		ID:         utils.GenerateID(),
		SenderID:   senderId,
		ReceiverID: receiverId,
		Text:       text,
		Image:      image,
		CreatedAt:  time.Now(),
	}

	if err := database.DB.Create(&msg).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "There is an error creating message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// GetMessages returns the full conversation between the current user and the
// user in the path parameter, in both directions.
func GetMessages(c *gin.Context) {
	userId := c.MustGet("userId").(string)
	otherId := c.Param("id")

	var messages []models.Message
	err := database.DB.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userId, otherId, otherId, userId,
	).Find(&messages).Error

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
