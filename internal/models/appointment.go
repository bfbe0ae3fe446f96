package models

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// AppointmentFile is a stored-file reference uploaded for an appointment.
type AppointmentFile struct {
	ID            string    `gorm:"primaryKey;type:text" json:"id"`
	AppointmentID string    `gorm:"index;type:text" json:"-"`
	FileName      string    `json:"fileName"`
	FileURL       string    `json:"fileUrl"`
	FileType      string    `json:"fileType"`
	CreatedAt     time.Time `json:"uploadDate"`
}

type Appointment struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	DoctorID  string `gorm:"index;type:text;not null" json:"doctorId"`
	Doctor    User   `gorm:"foreignKey:DoctorID" json:"doctor"`
	PatientID string `gorm:"index;type:text;not null" json:"patientId"`
	Patient   User   `gorm:"foreignKey:PatientID" json:"patient"`

	AppointmentDate time.Time         `gorm:"index;not null" json:"appointmentDate"`
	ReasonForVisit  string            `gorm:"not null" json:"reasonForVisit"`
	Notes           string            `json:"notes"`
	Status          AppointmentStatus `gorm:"type:text;default:'pending'" json:"status"`

	UploadedFiles []AppointmentFile `gorm:"foreignKey:AppointmentID" json:"uploadedFiles,omitempty"`

	// Set when the doctor completes the appointment
	Diagnosis      string     `json:"diagnosis,omitempty"`
	Prescription   string     `json:"prescription,omitempty"`
	FollowUpNeeded bool       `gorm:"default:false" json:"followUpNeeded"`
	FollowUpDate   *time.Time `json:"followUpDate,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}
