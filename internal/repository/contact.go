package repository

import (
	"context"

	"tush00nka/phonebook_messenger/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContactRepository interface {
	Add(ctx context.Context, userID, contactID uint) error
	ListWithLastMessage(ctx context.Context, userID uint) ([]model.ContactEntry, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Add inserts the edge; an existing (user_id, contact_id) pair is left as is.
func (r *contactRepository) Add(ctx context.Context, userID, contactID uint) error {
	contact := model.Contact{UserID: userID, ContactID: contactID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&contact).Error
	return translate(err)
}

const contactsWithLastMessageQuery = `
SELECT u.id, u.phone, u.name, u.bio, u.avatar,
       (SELECT m.content FROM messages m
        WHERE (m.sender_id = u.id AND m.receiver_id = ?)
           OR (m.sender_id = ? AND m.receiver_id = u.id)
        ORDER BY m.created_at DESC, m.id DESC LIMIT 1) AS last_message,
       (SELECT m.created_at FROM messages m
        WHERE (m.sender_id = u.id AND m.receiver_id = ?)
           OR (m.sender_id = ? AND m.receiver_id = u.id)
        ORDER BY m.created_at DESC, m.id DESC LIMIT 1) AS last_message_time
FROM contacts c
JOIN users u ON c.contact_id = u.id
WHERE c.user_id = ?
ORDER BY last_message_time DESC NULLS LAST, u.id ASC`

// ListWithLastMessage returns the contacts of userID, most recent conversation
// first; contacts without messages come last.
func (r *contactRepository) ListWithLastMessage(ctx context.Context, userID uint) ([]model.ContactEntry, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(contactsWithLastMessageQuery, userID, userID, userID, userID, userID).
		Rows()
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	contacts := []model.ContactEntry{}
	for rows.Next() {
		var (
			entry    model.ContactEntry
			lastTime nullTime
		)
		if err := rows.Scan(&entry.ID, &entry.Phone, &entry.Name, &entry.Bio, &entry.Avatar, &entry.LastMessage, &lastTime); err != nil {
			return nil, err
		}
		if lastTime.Valid {
			t := lastTime.Time
			entry.LastMessageTime = &t
		}
		contacts = append(contacts, entry)
	}

	return contacts, rows.Err()
}
