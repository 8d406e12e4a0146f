package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Nomor Induk Siswa Nasional
	StudentNISN string `gorm:"type:varchar(20);not null;uniqueIndex;column:student_nisn" json:"student_nisn"`
	StudentName string `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`

	// Orang tua/wali (user dengan role PARENT), opsional
	StudentParentID *uuid.UUID `gorm:"type:uuid;column:student_parent_id" json:"student_parent_id,omitempty"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
