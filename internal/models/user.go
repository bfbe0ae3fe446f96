package models

import (
	"time"

	"github.com/lib/pq"
)

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// WorkingHour is one availability window in a doctor's weekly schedule.
// Days with empty From/To are treated as unavailable.
type WorkingHour struct {
	ID       string `gorm:"primaryKey;type:text" json:"-"`
	DoctorID string `gorm:"index;type:text" json:"-"`
	Day      string `gorm:"type:text" json:"day"`
	From     string `gorm:"type:text" json:"from"`
	To       string `gorm:"type:text" json:"to"`
}

// MedicalDocument is a stored-file reference attached to a patient profile.
type MedicalDocument struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"index;type:text" json:"-"`
	FileName  string    `json:"fileName"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"uploadDate"`
}

type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName     string `gorm:"not null" json:"fullName"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber  string `gorm:"not null" json:"phoneNumber"`
	Gender       Gender `gorm:"type:text" json:"gender"`
	ProfileImage string `json:"profileImage"`
	Password     string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:text;default:'patient';not null" json:"role"`
	IsVerified   bool   `gorm:"default:false" json:"isVerified"`

	// Patient medical profile
	Age                int            `json:"age,omitempty"`
	Height             int            `json:"height,omitempty"` // cm
	Weight             int            `json:"weight,omitempty"` // kg
	BloodType          string         `gorm:"type:text" json:"bloodType,omitempty"`
	MedicalCondition   string         `json:"medicalCondition,omitempty"`
	ChronicDiseases    pq.StringArray `gorm:"type:text[]" json:"chronicDiseases,omitempty"`
	CurrentMedications pq.StringArray `gorm:"type:text[]" json:"currentMedications,omitempty"`

	MedicalDocuments []MedicalDocument `gorm:"foreignKey:UserID" json:"medicalDocuments,omitempty"`

	// Doctor profile
	SpecialtyID       *string        `gorm:"index;type:text" json:"specialtyId,omitempty"`
	Specialty         *Specialty     `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	WorkPlace         string         `json:"workPlace,omitempty"`
	ClinicLocation    string         `json:"clinicLocation,omitempty"`
	Certifications    pq.StringArray `gorm:"type:text[]" json:"certifications,omitempty"`
	YearsOfExperience int            `json:"yearsOfExperience,omitempty"`
	ProfessionalBio   string         `json:"professionalBio,omitempty"`
	WorkingHours      []WorkingHour  `gorm:"foreignKey:DoctorID" json:"workingHours,omitempty"`
	Availability      pq.StringArray `gorm:"type:text[]" json:"availability,omitempty"`

	// Review stats, maintained by the review handlers
	AverageRating   float64 `gorm:"default:0" json:"averageRating"`
	NumberOfReviews int     `gorm:"default:0" json:"numberOfReviews"`

	// Password reset (hashed OTP flow)
	PasswordResetCode     string     `json:"-"`
	PasswordResetExpires  *time.Time `json:"-"`
	PasswordResetVerified bool       `gorm:"default:false" json:"-"`
	PasswordChangedAt     *time.Time `json:"-"`
}

// RecomputeAvailability derives the availability day list from the working
// hours, keeping only days where both ends of the window are set.
func (u *User) RecomputeAvailability() {
	days := make([]string, 0, len(u.WorkingHours))
	for _, wh := range u.WorkingHours {
		if wh.From != "" && wh.To != "" {
			days = append(days, wh.Day)
		}
	}
	u.Availability = days
}
