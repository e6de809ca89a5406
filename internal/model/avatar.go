package model

import "time"

type AvatarUpload struct {
	URL         string    `json:"avatar"`
	Key         string    `json:"-"`
	Bucket      string    `json:"-"`
	ContentType string    `json:"-"`
	Size        int64     `json:"-"`
	UserID      uint      `json:"-"`
	CreatedAt   time.Time `json:"-"`
}
