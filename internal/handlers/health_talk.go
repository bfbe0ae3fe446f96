package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

var validCategories = map[models.HealthTalkCategory]bool{
	models.CategoryArticles:    true,
	models.CategoryCaseStudies: true,
	models.CategoryResearch:    true,
}

// CreateHealthTalk publishes a new article (doctors only)
func CreateHealthTalk(c *gin.Context) {
	authorId := c.MustGet("userId").(string)

	title := c.PostForm("title")
	content := c.PostForm("content")
	category := models.HealthTalkCategory(c.PostForm("category"))

	if title == "" || len(title) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A health talk must have a title under 100 characters"})
		return
	}
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A health talk must have content"})
		return
	}
	if !validCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of Articles, Case Studies, Research"})
		return
	}

	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	talk := models.HealthTalk{
		ID:       utils.GenerateID(),
		AuthorID: authorId,
		Title:    title,
		Content:  content,
		Category: category,
		Tags:     tags,
	}

	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		url, err := UploadToStorage(file, header, "health-talks")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		talk.Image = url
	}

	if err := database.DB.Create(&talk).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create health talk"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": talk})
}

// GetAllHealthTalks is the public listing with keyword/category/tag filters
// and pagination
func GetAllHealthTalks(c *gin.Context) {
	query := database.DB.Model(&models.HealthTalk{}).Preload("Author").Preload("Author.Specialty")

	if keyword := c.Query("keyword"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ? OR ? ILIKE ANY(tags)", like, like, keyword)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if tags := c.Query("tags"); tags != "" {
		query = query.Where("tags && ?", pq.StringArray(strings.Split(tags, ",")))
	}
	if author := c.Query("author"); author != "" {
		query = query.Where("author_id = ?", author)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	var total int64
	query.Count(&total)

	var talks []models.HealthTalk
	err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&talks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch health talks"})
		return
	}

	for i := range talks {
		database.DB.Model(&models.HealthTalkLike{}).
			Where("health_talk_id = ?", talks[i].ID).
			Count(&talks[i].LikesCount)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(talks),
		"pagination": gin.H{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalResults": total,
			"limit":        limit,
		},
		"data": talks,
	})
}

// GetHealthTalkByID returns one article with its comments and likes
func GetHealthTalkByID(c *gin.Context) {
	var talk models.HealthTalk
	err := database.DB.
		Preload("Author").Preload("Author.Specialty").
		Preload("Comments").Preload("Comments.User").
		Preload("Likes").
		First(&talk, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No health talk found with that ID"})
		return
	}

	talk.LikesCount = int64(len(talk.Likes))

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": talk})
}

// UpdateHealthTalk lets the author edit their article
func UpdateHealthTalk(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var talk models.HealthTalk
	if err := database.DB.First(&talk, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No health talk found with that ID"})
		return
	}

	if talk.AuthorID != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to update this health talk"})
		return
	}

	var req struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Category string   `json:"category"`
		Tags     []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != "" {
		talk.Title = req.Title
	}
	if req.Content != "" {
		talk.Content = req.Content
	}
	if req.Category != "" {
		category := models.HealthTalkCategory(req.Category)
		if !validCategories[category] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of Articles, Case Studies, Research"})
			return
		}
		talk.Category = category
	}
	if req.Tags != nil {
		talk.Tags = req.Tags
	}

	if err := database.DB.Save(&talk).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update health talk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": talk})
}

// DeleteHealthTalk lets the author remove their article
func DeleteHealthTalk(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var talk models.HealthTalk
	if err := database.DB.First(&talk, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No health talk found with that ID"})
		return
	}

	if talk.AuthorID != userId {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to delete this health talk"})
		return
	}

	database.DB.Where("health_talk_id = ?", talk.ID).Delete(&models.HealthTalkComment{})
	database.DB.Where("health_talk_id = ?", talk.ID).Delete(&models.HealthTalkLike{})
	if err := database.DB.Delete(&talk).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete health talk"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// AddComment appends a comment to an article
func AddComment(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var talk models.HealthTalk
	if err := database.DB.First(&talk, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No health talk found with that ID"})
		return
	}

	comment := models.HealthTalkComment{
		ID:           utils.GenerateID(),
		HealthTalkID: talk.ID,
		UserID:       userId,
		Text:         req.Text,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	database.DB.Preload("Comments").Preload("Comments.User").First(&talk, "id = ?", talk.ID)

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": talk})
}

// ToggleLike likes or unlikes an article for the current user
func ToggleLike(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var talk models.HealthTalk
	if err := database.DB.First(&talk, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No health talk found with that ID"})
		return
	}

	var like models.HealthTalkLike
	err := database.DB.Where("health_talk_id = ? AND user_id = ?", talk.ID, userId).First(&like).Error
	if err == nil {
		database.DB.Delete(&like)
	} else {
		database.DB.Create(&models.HealthTalkLike{
			ID:           utils.GenerateID(),
			HealthTalkID: talk.ID,
			UserID:       userId,
		})
	}

	database.DB.Model(&models.HealthTalkLike{}).Where("health_talk_id = ?", talk.ID).Count(&talk.LikesCount)

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": talk})
}
