package repository

import (
	"context"
	"time"

	"tush00nka/phonebook_messenger/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	FindCompletedByPhone(ctx context.Context, phone string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	CompleteProfile(ctx context.Context, id uint, name, bio, avatar string) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, name, bio, avatar *string) (*model.User, error)
	SetBlocked(ctx context.Context, id uint, blocked bool) (*model.User, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindCompletedByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("phone = ? AND is_profile_completed = ?", phone, true).
		First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// List returns every user, newest first.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *userRepository) CompleteProfile(ctx context.Context, id uint, name, bio, avatar string) (*model.User, error) {
	return r.update(ctx, id, map[string]any{
		"name":                 name,
		"bio":                  bio,
		"avatar":               avatar,
		"is_profile_completed": true,
		"updated_at":           time.Now(),
	})
}

// UpdateProfile writes all three fields as given; nil stores NULL.
func (r *userRepository) UpdateProfile(ctx context.Context, id uint, name, bio, avatar *string) (*model.User, error) {
	return r.update(ctx, id, map[string]any{
		"name":       name,
		"bio":        bio,
		"avatar":     avatar,
		"updated_at": time.Now(),
	})
}

// SetBlocked leaves updated_at untouched.
func (r *userRepository) SetBlocked(ctx context.Context, id uint, blocked bool) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("id = ?", id).UpdateColumn("is_blocked", blocked)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&user, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).UpdateColumn("password", hash)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) update(ctx context.Context, id uint, fields map[string]any) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&user, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
