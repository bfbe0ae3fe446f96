package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func forgotPasswordRequest(body gin.H) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	raw, _ := json.Marshal(body)
	c.Request, _ = http.NewRequest("POST", "/api/v1/auth/forgotPassword", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")

	ForgotPassword(c)
	return w
}

func TestForgotPassword_StoresHashedCode(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "fp_user", FullName: "Pat", Email: "fp_user@example.com", PhoneNumber: "1", Password: "x"})

	w := forgotPasswordRequest(gin.H{"email": "fp_user@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	database.DB.First(&user, "id = ?", "fp_user")

	// The code is stored hashed, never in the clear
	assert.NotEmpty(t, user.PasswordResetCode)
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordResetCode), []byte("000000")))
	assert.NotNil(t, user.PasswordResetExpires)
	assert.False(t, user.PasswordResetVerified)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := forgotPasswordRequest(gin.H{"email": "nobody@example.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
