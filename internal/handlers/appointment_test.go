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

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

func createAppointmentRequest(patientId string, body gin.H) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	raw, _ := json.Marshal(body)
	c.Request, _ = http.NewRequest("POST", "/api/v1/appointments", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("userId", patientId)

	CreateAppointment(c)
	return w
}

func TestCreateAppointment_Success(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "ap_doc", FullName: "Doc", Email: "ap_doc@example.com", PhoneNumber: "1", Password: "x", Role: models.RoleDoctor})
	database.DB.Create(&models.User{ID: "ap_pat", FullName: "Pat", Email: "ap_pat@example.com", PhoneNumber: "2", Password: "x", Role: models.RolePatient})

	w := createAppointmentRequest("ap_pat", gin.H{
		"doctor":          "ap_doc",
		"appointmentDate": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"reasonForVisit":  "Routine checkup",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var appointment models.Appointment
	err := database.DB.Where("patient_id = ?", "ap_pat").First(&appointment).Error
	assert.NoError(t, err)
	assert.Equal(t, "ap_doc", appointment.DoctorID)
	assert.Equal(t, models.AppointmentPending, appointment.Status)
}

func TestCreateAppointment_PastDate(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "pd_doc", FullName: "Doc", Email: "pd_doc@example.com", PhoneNumber: "1", Password: "x", Role: models.RoleDoctor})

	w := createAppointmentRequest("pd_pat", gin.H{
		"doctor":          "pd_doc",
		"appointmentDate": time.Now().Add(-48 * time.Hour).Format(time.RFC3339),
		"reasonForVisit":  "Too late",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&models.Appointment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateAppointment_DoctorNotFound(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	// A patient id is not a valid doctor target
	database.DB.Create(&models.User{ID: "nf_pat", FullName: "Pat", Email: "nf_pat@example.com", PhoneNumber: "1", Password: "x", Role: models.RolePatient})

	w := createAppointmentRequest("nf_pat", gin.H{
		"doctor":          "nf_pat",
		"appointmentDate": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"reasonForVisit":  "Wrong target",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
