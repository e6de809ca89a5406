package model

import "time"

// Contact is a directed edge: UserID keeps ContactID in their list.
type Contact struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_contacts_pair" json:"user_id"`
	ContactID uint  `gorm:"not null;uniqueIndex:idx_contacts_pair" json:"contact_id"`
	Owner     *User `gorm:"foreignKey:UserID" json:"-"`
	Peer      *User `gorm:"foreignKey:ContactID" json:"-"`
}

// ContactEntry is a contact's profile with a preview of the latest message
// exchanged with the list owner.
type ContactEntry struct {
	ID              uint       `json:"id"`
	Phone           string     `json:"phone"`
	Name            *string    `json:"name"`
	Bio             *string    `json:"bio"`
	Avatar          *string    `json:"avatar"`
	LastMessage     *string    `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time"`
}
