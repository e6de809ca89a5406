package service

import (
	"context"
	"errors"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/repository"
)

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) Send(ctx context.Context, senderID, receiverID uint, content string) (*model.Message, error) {
	if senderID == 0 {
		return nil, required("sender_id")
	}
	if receiverID == 0 {
		return nil, required("receiver_id")
	}
	if content == "" {
		return nil, required("content")
	}

	msg := &model.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return msg, nil
}

// History replays the whole conversation between the two users, oldest first.
func (s *messageService) History(ctx context.Context, userID, contactID uint) ([]model.ConversationMessage, error) {
	if userID == 0 {
		return nil, required("user_id")
	}
	if contactID == 0 {
		return nil, required("contact_id")
	}

	return s.messageRepo.Conversation(ctx, userID, contactID)
}
