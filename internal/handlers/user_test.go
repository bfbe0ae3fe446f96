package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

func TestGetUser_InvalidID(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/v1/users/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	GetUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser_InvalidID(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	id := utils.GenerateID()
	database.DB.Create(&models.User{ID: id, FullName: "Keep", Email: "keep@example.com", PhoneNumber: "1", Password: "x"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/api/v1/users/123", nil)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	DeleteUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was deleted
	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
