package models

import (
	"time"

	"github.com/lib/pq"
)

type HealthTalkCategory string

const (
	CategoryArticles    HealthTalkCategory = "Articles"
	CategoryCaseStudies HealthTalkCategory = "Case Studies"
	CategoryResearch    HealthTalkCategory = "Research"
)

// HealthTalkComment is a reader comment on a health talk.
type HealthTalkComment struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	HealthTalkID string    `gorm:"index;type:text" json:"-"`
	UserID       string    `gorm:"type:text;not null" json:"userId"`
	User         User      `gorm:"foreignKey:UserID" json:"user"`
	Text         string    `gorm:"not null" json:"text"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HealthTalkLike records one user's like. The pair is unique so liking twice
// toggles instead of duplicating.
type HealthTalkLike struct {
	ID           string    `gorm:"primaryKey;type:text" json:"-"`
	HealthTalkID string    `gorm:"uniqueIndex:idx_health_talk_likes;type:text" json:"-"`
	UserID       string    `gorm:"uniqueIndex:idx_health_talk_likes;type:text" json:"userId"`
	CreatedAt    time.Time `json:"-"`
}

// HealthTalk is an article, case study, or research post authored by a doctor.
type HealthTalk struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	AuthorID string `gorm:"index;type:text;not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	Title    string             `gorm:"not null" json:"title"`
	Content  string             `gorm:"type:text;not null" json:"content"`
	Category HealthTalkCategory `gorm:"type:text;not null" json:"category"`
	Tags     pq.StringArray     `gorm:"type:text[]" json:"tags"`
	Image    string             `json:"image,omitempty"`

	Comments []HealthTalkComment `gorm:"foreignKey:HealthTalkID" json:"comments,omitempty"`
	Likes    []HealthTalkLike    `gorm:"foreignKey:HealthTalkID" json:"likes,omitempty"`

	LikesCount int64 `gorm:"-" json:"likesCount"`
}
