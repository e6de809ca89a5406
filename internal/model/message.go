package model

import "time"

// Message is immutable once sent. IsRead is kept in the schema but nothing
// sets it yet.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	Sender     *User     `gorm:"foreignKey:SenderID" json:"-"`
	Receiver   *User     `gorm:"foreignKey:ReceiverID" json:"-"`
}

type SentMessage struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"sender_id"`
	ReceiverID uint      `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConversationMessage is a history entry joined with the sender's current
// name and avatar.
type ConversationMessage struct {
	ID           uint      `json:"id"`
	SenderID     uint      `json:"sender_id"`
	ReceiverID   uint      `json:"receiver_id"`
	Content      string    `json:"content"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
	SenderName   *string   `json:"sender_name"`
	SenderAvatar *string   `json:"sender_avatar"`
}

func (m *Message) Sent() SentMessage {
	return SentMessage{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}
