package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus di wire: string exact-match, case-sensitive.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusHoliday AttendanceStatus = "HOLIDAY"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHoliday:
		return true
	}
	return false
}

// AttendanceModel: satu record absensi per (kelas, siswa, tanggal).
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_attendance_class_student_date;column:attendance_class_id" json:"attendance_class_id"`
	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_attendance_class_student_date;column:attendance_student_id" json:"attendance_student_id"`

	AttendanceDate   time.Time        `gorm:"type:date;not null;uniqueIndex:uidx_attendance_class_student_date;column:attendance_date" json:"attendance_date"`
	AttendanceStatus AttendanceStatus `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
