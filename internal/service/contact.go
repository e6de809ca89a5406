package service

import (
	"context"
	"errors"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/repository"
)

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// Add succeeds whether or not the pair already existed.
func (s *contactService) Add(ctx context.Context, userID, contactID uint) error {
	if userID == 0 {
		return required("user_id")
	}
	if contactID == 0 {
		return required("contact_id")
	}

	if err := s.contactRepo.Add(ctx, userID, contactID); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

func (s *contactService) List(ctx context.Context, userID uint) ([]model.ContactEntry, error) {
	if userID == 0 {
		return nil, required("user_id")
	}

	return s.contactRepo.ListWithLastMessage(ctx, userID)
}
