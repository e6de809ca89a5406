package repository

import (
	"context"

	"tush00nka/phonebook_messenger/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	Conversation(ctx context.Context, userID, contactID uint) ([]model.ConversationMessage, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(message).Error)
}

// Conversation returns every message between the two users in either
// direction, oldest first.
func (r *messageRepository) Conversation(ctx context.Context, userID, contactID uint) ([]model.ConversationMessage, error) {
	messages := []model.ConversationMessage{}
	err := r.db.WithContext(ctx).
		Table("messages AS m").
		Select("m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at, u.name AS sender_name, u.avatar AS sender_avatar").
		Joins("JOIN users u ON m.sender_id = u.id").
		Where("(m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?)", userID, contactID, contactID, userID).
		Order("m.created_at ASC").
		Order("m.id ASC").
		Scan(&messages).Error
	if err != nil {
		return nil, translate(err)
	}
	return messages, nil
}
