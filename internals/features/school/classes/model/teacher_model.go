package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	// Nomor Induk Pegawai
	TeacherNIP string `gorm:"type:varchar(30);not null;uniqueIndex;column:teacher_nip" json:"teacher_nip"`

	TeacherUserID uuid.UUID            `gorm:"type:uuid;not null;column:teacher_user_id" json:"teacher_user_id"`
	User          *userModel.UserModel `gorm:"foreignKey:TeacherUserID;references:UserID" json:"user,omitempty"`

	TeacherCreatedAt time.Time  `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
