package models

import "time"

// Message is a direct message between two users. A conversation is identified
// by the unordered {SenderID, ReceiverID} pair, not by direction. Messages are
// immutable once created.
type Message struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	SenderID   string    `gorm:"index;type:text;not null" json:"senderId"`
	Sender     User      `gorm:"foreignKey:SenderID" json:"-"`
	ReceiverID string    `gorm:"index;type:text;not null" json:"receiverId"`
	Receiver   User      `gorm:"foreignKey:ReceiverID" json:"-"`
	Text       string    `json:"text,omitempty"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}
