package models

import "time"

// Specialty is a medical discipline doctors register under
type Specialty struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `gorm:"index;not null" json:"name"`
	Description string `json:"description"`
	ImageCover  string `json:"imageCover"`

	// Derived at query time, not stored
	DoctorsCount int64 `gorm:"-" json:"doctorsCount"`
}
