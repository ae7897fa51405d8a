package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a direct message between two users. There is no stored
// conversation entity; conversations are derived from the flat message table
// by pairing sender and receiver.
type Message struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SenderID   uint           `gorm:"not null;index" json:"sender_id"`
	Sender     *User          `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID uint           `gorm:"not null;index" json:"receiver_id"`
	Receiver   *User          `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Read       bool           `gorm:"default:false;index" json:"read"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Counterpart returns the other party of the message from userID's side.
func (m *Message) Counterpart(userID uint) uint {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Between reports whether the message was exchanged between the two users,
// in either direction.
func (m *Message) Between(a, b uint) bool {
	return (m.SenderID == a && m.ReceiverID == b) ||
		(m.SenderID == b && m.ReceiverID == a)
}

// Conversation is the derived view of a message thread with one counterpart.
// It is never persisted.
type Conversation struct {
	Partner     User     `json:"partner"`
	LastMessage *Message `json:"last_message,omitempty"`
	UnreadCount int      `json:"unread_count"`
}
