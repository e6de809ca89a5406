package service

import (
	"context"

	"tush00nka/phonebook_messenger/internal/model"
)

type UserService interface {
	Login(ctx context.Context, phone, password string) (*model.User, error)
	Register(ctx context.Context, phone, password string) (*model.User, error)
	CompleteProfile(ctx context.Context, input CompleteProfileInput) (*model.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.User, error)
	Search(ctx context.Context, phone string) (*model.PublicProfile, error)
	ListAll(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, phone, password, name string) (*model.User, error)
	SetBlocked(ctx context.Context, userID uint, blocked bool) (*model.User, error)
}

type ContactService interface {
	Add(ctx context.Context, userID, contactID uint) error
	List(ctx context.Context, userID uint) ([]model.ContactEntry, error)
}

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID uint, content string) (*model.Message, error)
	History(ctx context.Context, userID, contactID uint) ([]model.ConversationMessage, error)
}

type AvatarService interface {
	Upload(ctx context.Context, input AvatarInput) (*model.AvatarUpload, error)
}

type CompleteProfileInput struct {
	UserID       uint
	Name         string
	Bio          string
	Avatar       string
	PhoneContact string // accepted from clients, not stored
}

// UpdateProfileInput overwrites all three fields; nil clears the column.
type UpdateProfileInput struct {
	UserID uint
	Name   *string
	Bio    *string
	Avatar *string
}

type AvatarInput struct {
	UserID      uint
	ContentType string
	Data        []byte
}
