package repository_test

import (
	"context"
	"testing"
	"time"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/pkg/testdb"
	"tush00nka/phonebook_messenger/internal/repository"

	"gorm.io/gorm"
)

func createUsers(t *testing.T, db *gorm.DB, phones ...string) []*model.User {
	t.Helper()
	repo := repository.NewUserRepository(db)
	users := make([]*model.User, 0, len(phones))
	for _, phone := range phones {
		u := &model.User{Phone: phone, Password: "x", Name: strPtr("user " + phone)}
		if err := repo.Create(context.Background(), u); err != nil {
			t.Fatalf("create %s: %v", phone, err)
		}
		users = append(users, u)
	}
	return users
}

func TestContactRepositoryAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	users := createUsers(t, db, "+1", "+2")
	repo := repository.NewContactRepository(db)

	for i := 0; i < 2; i++ {
		if err := repo.Add(ctx, users[0].ID, users[1].ID); err != nil {
			t.Fatalf("Add() #%d error = %v", i+1, err)
		}
	}

	var count int64
	if err := db.Model(&model.Contact{}).Where("user_id = ? AND contact_id = ?", users[0].ID, users[1].ID).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("contact rows = %d, want 1", count)
	}
}

func TestContactRepositoryListOrdersByLastMessage(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	users := createUsers(t, db, "+1", "+2", "+3", "+4")
	owner, silent, older, recent := users[0], users[1], users[2], users[3]

	contacts := repository.NewContactRepository(db)
	for _, c := range []*model.User{silent, older, recent} {
		if err := contacts.Add(ctx, owner.ID, c.ID); err != nil {
			t.Fatal(err)
		}
	}

	messages := repository.NewMessageRepository(db)
	send := func(from, to *model.User, text string) {
		t.Helper()
		if err := messages.Create(ctx, &model.Message{SenderID: from.ID, ReceiverID: to.ID, Content: text}); err != nil {
			t.Fatal(err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	send(owner, older, "hi older")
	send(recent, owner, "hi from recent")
	send(older, owner, "older reply")
	send(owner, recent, "latest")

	list, err := contacts.ListWithLastMessage(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListWithLastMessage() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}

	if list[0].ID != recent.ID || list[1].ID != older.ID || list[2].ID != silent.ID {
		t.Fatalf("order = %d, %d, %d; want %d, %d, %d", list[0].ID, list[1].ID, list[2].ID, recent.ID, older.ID, silent.ID)
	}
	if list[0].LastMessage == nil || *list[0].LastMessage != "latest" {
		t.Errorf("recent last_message = %v, want latest", list[0].LastMessage)
	}
	if list[1].LastMessage == nil || *list[1].LastMessage != "older reply" {
		t.Errorf("older last_message = %v, want older reply", list[1].LastMessage)
	}
	if list[0].LastMessageTime == nil || list[1].LastMessageTime == nil {
		t.Fatal("last_message_time missing for contacts with messages")
	}
	if list[2].LastMessage != nil || list[2].LastMessageTime != nil {
		t.Errorf("silent contact has a preview: %v, %v", list[2].LastMessage, list[2].LastMessageTime)
	}
}

func TestContactRepositoryListEmpty(t *testing.T) {
	db := testdb.New(t)
	users := createUsers(t, db, "+1")

	list, err := repository.NewContactRepository(db).ListWithLastMessage(context.Background(), users[0].ID)
	if err != nil {
		t.Fatalf("ListWithLastMessage() error = %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("ListWithLastMessage() = %v, want empty non-nil slice", list)
	}
}
