package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentClassModel merelasikan siswa dengan kelas (roster absensi).
// Satu siswa hanya boleh terdaftar sekali per kelas.
type StudentClassModel struct {
	StudentClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_class_id" json:"student_class_id"`

	StudentClassStudentID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uidx_student_class;column:student_class_student_id" json:"student_class_student_id"`
	StudentClassClassID   uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uidx_student_class;column:student_class_class_id" json:"student_class_class_id"`
	Student               *StudentModel `gorm:"foreignKey:StudentClassStudentID;references:StudentID" json:"student,omitempty"`
	Class                 *ClassModel   `gorm:"foreignKey:StudentClassClassID;references:ClassID" json:"class,omitempty"`

	StudentClassCreatedAt time.Time `gorm:"column:student_class_created_at;autoCreateTime" json:"student_class_created_at"`
}

func (StudentClassModel) TableName() string { return "student_classes" }
