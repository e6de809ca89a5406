package service_test

import (
	"context"
	"errors"
	"testing"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/pkg/testdb"
	"tush00nka/phonebook_messenger/internal/repository"
	"tush00nka/phonebook_messenger/internal/service"

	"gorm.io/gorm"
)

func seedUsers(t *testing.T, db *gorm.DB, phones ...string) []model.User {
	t.Helper()
	repo := repository.NewUserRepository(db)
	users := make([]model.User, 0, len(phones))
	for _, phone := range phones {
		user := model.User{Phone: phone, Password: "x"}
		if err := repo.Create(context.Background(), &user); err != nil {
			t.Fatal(err)
		}
		users = append(users, user)
	}
	return users
}

func TestSendAndHistory(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	users := seedUsers(t, db, "+1", "+2")
	a, b := users[0].ID, users[1].ID
	svc := service.NewMessageService(repository.NewMessageRepository(db))

	sent, err := svc.Send(ctx, a, b, "hello")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if sent.ID == 0 || sent.IsRead || sent.CreatedAt.IsZero() {
		t.Errorf("Send() = %+v", sent)
	}
	if _, err := svc.Send(ctx, b, a, "hi"); err != nil {
		t.Fatal(err)
	}

	history, err := svc.History(ctx, b, a)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 || history[0].Content != "hello" || history[1].Content != "hi" {
		t.Errorf("History() = %+v", history)
	}
}

func TestSendValidation(t *testing.T) {
	svc := service.NewMessageService(repository.NewMessageRepository(testdb.New(t)))

	var fieldErr *service.FieldError
	if _, err := svc.Send(context.Background(), 1, 2, ""); !errors.As(err, &fieldErr) || fieldErr.Field != "content" {
		t.Errorf("Send(empty content) error = %v", err)
	}
	if _, err := svc.History(context.Background(), 1, 0); !errors.As(err, &fieldErr) || fieldErr.Field != "contact_id" {
		t.Errorf("History(no contact) error = %v", err)
	}
}

func TestContactAddIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	users := seedUsers(t, db, "+1", "+2")
	svc := service.NewContactService(repository.NewContactRepository(db))

	for i := 0; i < 2; i++ {
		if err := svc.Add(ctx, users[0].ID, users[1].ID); err != nil {
			t.Fatalf("Add() #%d error = %v", i, err)
		}
	}

	contacts, err := svc.List(ctx, users[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 1 || contacts[0].ID != users[1].ID {
		t.Errorf("List() = %+v", contacts)
	}

	var fieldErr *service.FieldError
	if err := svc.Add(ctx, users[0].ID, 0); !errors.As(err, &fieldErr) {
		t.Errorf("Add(no contact) error = %v", err)
	}
}

func TestUnknownUserReference(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	users := seedUsers(t, db, "+1")

	messages := service.NewMessageService(repository.NewMessageRepository(db))
	if _, err := messages.Send(ctx, users[0].ID, 42, "hi"); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("Send(unknown receiver) error = %v, want ErrUserNotFound", err)
	}

	contacts := service.NewContactService(repository.NewContactRepository(db))
	if err := contacts.Add(ctx, users[0].ID, 42); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("Add(unknown contact) error = %v, want ErrUserNotFound", err)
	}
}
