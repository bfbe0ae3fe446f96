package models

import "time"

// Review is a patient's rating of a doctor. One review per (doctor, patient).
type Review struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	DoctorID  string `gorm:"uniqueIndex:idx_reviews_doctor_patient;type:text;not null" json:"doctorId"`
	Doctor    User   `gorm:"foreignKey:DoctorID" json:"-"`
	PatientID string `gorm:"uniqueIndex:idx_reviews_doctor_patient;type:text;not null" json:"patientId"`
	Patient   User   `gorm:"foreignKey:PatientID" json:"patient"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `gorm:"not null" json:"comment"`
}
