package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/internal/services"
)

// SetupTestDB initializes an in-memory SQLite DB for testing. The shared
// cache survives across tests in the package, so tables are dropped first.
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.Migrator().DropTable(
		&models.User{},
		&models.Message{},
		&models.Specialty{},
		&models.Appointment{},
		&models.Review{},
	)
	database.DB.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Specialty{},
		&models.Appointment{},
		&models.Review{},
	)
}

func sendJSONMessage(senderId, receiverId string, body gin.H) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	raw, _ := json.Marshal(body)
	c.Request, _ = http.NewRequest("POST", "/api/v1/messages/"+receiverId, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: receiverId}}
	c.Set("userId", senderId)

	SendMessage(c)
	return w
}

func TestSendMessage_Text(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "sender1", FullName: "Sender", Email: "sender1@example.com", PhoneNumber: "1", Password: "x"})
	database.DB.Create(&models.User{ID: "receiver1", FullName: "Receiver", Email: "receiver1@example.com", PhoneNumber: "2", Password: "x"})

	w := sendJSONMessage("sender1", "receiver1", gin.H{"text": "hello there"})

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Message{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var msg models.Message
	database.DB.First(&msg)
	assert.Equal(t, "sender1", msg.SenderID)
	assert.Equal(t, "receiver1", msg.ReceiverID)
	assert.Equal(t, "hello there", msg.Text)
	assert.NotEmpty(t, msg.ID)
}

func TestSendMessage_EmptyRejected(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "e_sender", FullName: "Sender", Email: "e_sender@example.com", PhoneNumber: "1", Password: "x"})
	database.DB.Create(&models.User{ID: "e_receiver", FullName: "Receiver", Email: "e_receiver@example.com", PhoneNumber: "2", Password: "x"})

	w := sendJSONMessage("e_sender", "e_receiver", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No record is written for a rejected message
	var count int64
	database.DB.Model(&models.Message{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSendMessage_UnknownReceiver(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "u_sender", FullName: "Sender", Email: "u_sender@example.com", PhoneNumber: "1", Password: "x"})

	w := sendJSONMessage("u_sender", "ghost", gin.H{"text": "anyone home?"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&models.Message{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSendMessage_StoreUnavailable(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "su_sender", FullName: "Sender", Email: "su_sender@example.com", PhoneNumber: "1", Password: "x"})
	database.DB.Create(&models.User{ID: "su_receiver", FullName: "Receiver", Email: "su_receiver@example.com", PhoneNumber: "2", Password: "x"})

	// A store outage must surface as a server error, not a validation failure
	sqlDB, _ := database.DB.DB()
	sqlDB.Close()

	w := sendJSONMessage("su_sender", "su_receiver", gin.H{"text": "hello?"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetMessages_BothDirections(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "gm_a", FullName: "A", Email: "gm_a@example.com", PhoneNumber: "1", Password: "x"})
	database.DB.Create(&models.User{ID: "gm_b", FullName: "B", Email: "gm_b@example.com", PhoneNumber: "2", Password: "x"})
	database.DB.Create(&models.User{ID: "gm_c", FullName: "C", Email: "gm_c@example.com", PhoneNumber: "3", Password: "x"})

	database.DB.Create(&models.Message{ID: "gm1", SenderID: "gm_a", ReceiverID: "gm_b", Text: "hi", CreatedAt: time.Now().Add(-2 * time.Minute)})
	database.DB.Create(&models.Message{ID: "gm2", SenderID: "gm_b", ReceiverID: "gm_a", Text: "hey", CreatedAt: time.Now().Add(-1 * time.Minute)})
	// Unrelated conversation must not leak in
	database.DB.Create(&models.Message{ID: "gm3", SenderID: "gm_a", ReceiverID: "gm_c", Text: "other", CreatedAt: time.Now()})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/v1/messages/gm_b", nil)
	c.Params = gin.Params{{Key: "id", Value: "gm_b"}}
	c.Set("userId", "gm_a")

	GetMessages(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var messages []models.Message
	json.Unmarshal(w.Body.Bytes(), &messages)
	assert.Len(t, messages, 2)
}

func TestGetUsersForSidebar_Ordering(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "sb_me", FullName: "Me", Email: "sb_me@example.com", PhoneNumber: "1", Password: "x"})
	database.DB.Create(&models.User{ID: "sb_b", FullName: "Bella", Email: "sb_b@example.com", PhoneNumber: "2", Password: "x"})
	database.DB.Create(&models.User{ID: "sb_c", FullName: "Carl", Email: "sb_c@example.com", PhoneNumber: "3", Password: "x"})

	t1 := time.Now().Add(-3 * time.Hour)
	t2 := time.Now().Add(-2 * time.Hour)
	t3 := time.Now().Add(-1 * time.Hour)

	database.DB.Create(&models.Message{ID: "sb1", SenderID: "sb_me", ReceiverID: "sb_b", Text: "first", CreatedAt: t1})
	database.DB.Create(&models.Message{ID: "sb2", SenderID: "sb_c", ReceiverID: "sb_me", Text: "middle", CreatedAt: t2})
	database.DB.Create(&models.Message{ID: "sb3", SenderID: "sb_b", ReceiverID: "sb_me", Text: "latest", CreatedAt: t3})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/v1/messages/users", nil)
	c.Set("userId", "sb_me")

	GetUsersForSidebar(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var summaries []services.ConversationSummary
	json.Unmarshal(w.Body.Bytes(), &summaries)

	// One entry per counterparty, most recent conversation first
	assert.Len(t, summaries, 2)
	if len(summaries) >= 2 {
		assert.Equal(t, "sb_b", summaries[0].UserID)
		assert.Equal(t, "Bella", summaries[0].FullName)
		assert.Equal(t, "latest", summaries[0].LastMessage.Text)
		assert.Equal(t, "sb_c", summaries[1].UserID)
	}
}
