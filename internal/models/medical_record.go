package models

import (
	"time"

	"github.com/lib/pq"
)

// RecordMedication is one prescribed medication in a medical record's
// treatment plan.
type RecordMedication struct {
	ID              string `gorm:"primaryKey;type:text" json:"-"`
	MedicalRecordID string `gorm:"index;type:text" json:"-"`
	Name            string `json:"name"`
	Dosage          string `json:"dosage"`
	Frequency       string `json:"frequency"`
	Duration        string `json:"duration"`
}

// RecordAttachment is a stored-file reference attached to a medical record.
type RecordAttachment struct {
	ID              string    `gorm:"primaryKey;type:text" json:"id"`
	MedicalRecordID string    `gorm:"index;type:text" json:"-"`
	FileName        string    `json:"fileName"`
	FileURL         string    `json:"fileUrl"`
	FileType        string    `json:"fileType"`
	CreatedAt       time.Time `json:"uploadDate"`
}

type MedicalRecord struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PatientID     string      `gorm:"index;type:text;not null" json:"patientId"`
	Patient       User        `gorm:"foreignKey:PatientID" json:"patient"`
	DoctorID      string      `gorm:"index;type:text;not null" json:"doctorId"`
	Doctor        User        `gorm:"foreignKey:DoctorID" json:"doctor"`
	AppointmentID string      `gorm:"index;type:text;not null" json:"appointmentId"`
	Appointment   Appointment `gorm:"foreignKey:AppointmentID" json:"appointment"`

	Diagnosis string         `gorm:"not null" json:"diagnosis"`
	Symptoms  pq.StringArray `gorm:"type:text[]" json:"symptoms"`

	Medications     []RecordMedication `gorm:"foreignKey:MedicalRecordID" json:"medications,omitempty"`
	Recommendations pq.StringArray     `gorm:"type:text[]" json:"recommendations"`

	FollowUpRequired bool       `gorm:"default:false" json:"followUpRequired"`
	FollowUpDate     *time.Time `json:"followUpDate,omitempty"`
	FollowUpNotes    string     `json:"followUpNotes,omitempty"`

	Attachments []RecordAttachment `gorm:"foreignKey:MedicalRecordID" json:"attachments,omitempty"`
}
