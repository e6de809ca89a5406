package model

import (
	"time"
)

// User is a row of the users table. Name, Bio and Avatar stay NULL until the
// profile is completed.
type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Phone              string    `gorm:"uniqueIndex;not null" json:"phone"` // +79995552233
	Password           string    `gorm:"not null" json:"-"`
	Name               *string   `json:"name"`
	Bio                *string   `json:"bio"`
	Avatar             *string   `json:"avatar"`
	IsAdmin            bool      `gorm:"not null;default:false" json:"is_admin"`
	IsBlocked          bool      `gorm:"not null;default:false" json:"is_blocked"`
	IsProfileCompleted bool      `gorm:"not null;default:false" json:"is_profile_completed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (u *User) SanitizePassword() {
	u.Password = ""
}

// Session is what login returns.
type Session struct {
	ID                 uint    `json:"id"`
	Phone              string  `json:"phone"`
	Name               *string `json:"name"`
	Bio                *string `json:"bio"`
	Avatar             *string `json:"avatar"`
	IsAdmin            bool    `json:"is_admin"`
	IsBlocked          bool    `json:"is_blocked"`
	IsProfileCompleted bool    `json:"is_profile_completed"`
}

type Registration struct {
	ID                 uint   `json:"id"`
	Phone              string `json:"phone"`
	IsProfileCompleted bool   `json:"is_profile_completed"`
}

// Profile is returned by complete_profile and update_profile.
type Profile struct {
	ID                 uint    `json:"id"`
	Phone              string  `json:"phone"`
	Name               *string `json:"name"`
	Bio                *string `json:"bio"`
	Avatar             *string `json:"avatar"`
	IsAdmin            bool    `json:"is_admin"`
	IsProfileCompleted bool    `json:"is_profile_completed"`
}

// PublicProfile is the search result. It is also the cached representation.
type PublicProfile struct {
	ID        uint    `json:"id"`
	Phone     string  `json:"phone"`
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	Avatar    *string `json:"avatar"`
	IsBlocked bool    `json:"is_blocked"`
}

// AdminUser is one entry of the admin listing.
type AdminUser struct {
	ID        uint      `json:"id"`
	Phone     string    `json:"phone"`
	Name      *string   `json:"name"`
	Bio       *string   `json:"bio"`
	Avatar    *string   `json:"avatar"`
	IsBlocked bool      `json:"is_blocked"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountStatus is returned by admin create and block toggling.
type AccountStatus struct {
	ID        uint    `json:"id"`
	Phone     string  `json:"phone"`
	Name      *string `json:"name"`
	IsBlocked bool    `json:"is_blocked"`
}

func (u *User) Session() Session {
	return Session{
		ID:                 u.ID,
		Phone:              u.Phone,
		Name:               u.Name,
		Bio:                u.Bio,
		Avatar:             u.Avatar,
		IsAdmin:            u.IsAdmin,
		IsBlocked:          u.IsBlocked,
		IsProfileCompleted: u.IsProfileCompleted,
	}
}

func (u *User) Registration() Registration {
	return Registration{ID: u.ID, Phone: u.Phone, IsProfileCompleted: u.IsProfileCompleted}
}

func (u *User) Profile() Profile {
	return Profile{
		ID:                 u.ID,
		Phone:              u.Phone,
		Name:               u.Name,
		Bio:                u.Bio,
		Avatar:             u.Avatar,
		IsAdmin:            u.IsAdmin,
		IsProfileCompleted: u.IsProfileCompleted,
	}
}

func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Phone:     u.Phone,
		Name:      u.Name,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		IsBlocked: u.IsBlocked,
	}
}

func (u *User) AdminUser() AdminUser {
	return AdminUser{
		ID:        u.ID,
		Phone:     u.Phone,
		Name:      u.Name,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		IsBlocked: u.IsBlocked,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func (u *User) AccountStatus() AccountStatus {
	return AccountStatus{ID: u.ID, Phone: u.Phone, Name: u.Name, IsBlocked: u.IsBlocked}
}
