package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserName     string `gorm:"type:varchar(100);not null;uniqueIndex;column:user_name" json:"user_name"`
	UserEmail    string `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string `gorm:"not null;column:user_password" json:"-"`

	// Role: ADMIN | TEACHER | PARENT
	UserRole string `gorm:"type:varchar(20);not null;default:'PARENT';column:user_role" json:"user_role"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
