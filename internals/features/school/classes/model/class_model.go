package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassModel struct {
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	ClassName string `gorm:"type:varchar(100);not null;uniqueIndex;column:class_name" json:"class_name"`

	// Wali kelas
	ClassTeacherID *uuid.UUID    `gorm:"type:uuid;column:class_teacher_id" json:"class_teacher_id,omitempty"`
	Teacher        *TeacherModel `gorm:"foreignKey:ClassTeacherID;references:TeacherID" json:"teacher,omitempty"`

	ClassCreatedAt time.Time  `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt *time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
