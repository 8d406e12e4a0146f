package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Semua request membawa LoggedUserRole (diisi controller dari token),
// diperiksa service sebelum validasi field.

type GetAttendanceDetailsRequest struct {
	LoggedUserRole string
	ClassID        uuid.UUID
	StudentID      uuid.UUID
	Date           string // "YYYY-MM-DD"
}

type GetDailyAttendanceRequest struct {
	LoggedUserRole string
	ClassID        uuid.UUID
	Date           string
}

type GetWeeklyAttendanceRequest struct {
	LoggedUserRole string
	ClassID        uuid.UUID
	Year           int
	Month          int
	Week           int
}

type GetStudentWeeklyAttendanceRequest struct {
	LoggedUserRole string
	ClassID        uuid.UUID
	StudentID      uuid.UUID
	Year           int
	Month          int
	Week           int
}

type GetStudentMonthlyAttendanceRequest struct {
	LoggedUserRole string
	ClassID        uuid.UUID
	StudentID      uuid.UUID
	Year           int
	Month          int
}

type CreateOrUpdateRequest struct {
	LoggedUserRole string
	ClassID        uuid.UUID
	StudentID      uuid.UUID
	Date           string `json:"date"`
	Status         string `json:"status"`
}

type AttendanceEntryRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=PRESENT ABSENT HOLIDAY"`
}

type CreateOrUpdateManyRequest struct {
	LoggedUserRole     string
	ClassID            uuid.UUID
	Date               string                   `json:"date"`
	StudentAttendances []AttendanceEntryRequest `json:"student_attendances"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceTeacher struct {
	ID   *uuid.UUID `json:"id"`
	Name *string    `json:"name"`
}

type AttendanceStudent struct {
	ID   uuid.UUID `json:"id"`
	NISN string    `json:"nisn"`
	Name string    `json:"name"`
}

// StudentAttendanceItem: satu sel harian di grid kelas.
type StudentAttendanceItem struct {
	NoStudent int               `json:"no_student"`
	Status    string            `json:"status"`
	Date      string            `json:"date"` // ISO "YYYY-MM-DD"
	Student   AttendanceStudent `json:"student"`
}

type AttendanceDetailsResponse struct {
	Date              string                  `json:"date"`
	Teacher           AttendanceTeacher       `json:"teacher"`
	Class             string                  `json:"class"`
	StudentAttendance []StudentAttendanceItem `json:"student_attendance"`
}

type DailyAttendanceResponse struct {
	Date              string                  `json:"date"`
	Teacher           AttendanceTeacher       `json:"teacher"`
	Class             string                  `json:"class"`
	PercentagePresent float64                 `json:"percentage_present"`
	StudentAttendance []StudentAttendanceItem `json:"student_attendance"`
}

// AttendanceMark: satu sel (tanggal, status) tanpa identitas siswa.
type AttendanceMark struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type WeeklyStudentBlock struct {
	ID                uuid.UUID        `json:"id"`
	NISN              string           `json:"nisn"`
	Name              string           `json:"name"`
	Attendance        []AttendanceMark `json:"attendance"`
	PercentagePresent float64          `json:"percentage_present"`
}

type WeeklyAttendanceResponse struct {
	Teacher  AttendanceTeacher    `json:"teacher"`
	Class    string               `json:"class"`
	Week     int                  `json:"week"`
	Range    string               `json:"range"`
	Students []WeeklyStudentBlock `json:"students"`
}

type StudentWeeklyAttendanceResponse struct {
	Teacher           AttendanceTeacher `json:"teacher"`
	Class             string            `json:"class"`
	Student           AttendanceStudent `json:"student"`
	Week              int               `json:"week"`
	Range             string            `json:"range"`
	Attendance        []AttendanceMark  `json:"attendance"`
	PercentagePresent float64           `json:"percentage_present"`
}

type MonthlyWeekBlock struct {
	NumOfTheWeek      int              `json:"num_of_the_week"`
	Range             string           `json:"range"`
	Attendance        []AttendanceMark `json:"attendance"`
	PercentagePresent float64          `json:"percentage_present"`
}

type StudentMonthlyAttendanceResponse struct {
	Teacher           AttendanceTeacher  `json:"teacher"`
	Class             string             `json:"class"`
	Student           AttendanceStudent  `json:"student"`
	Month             int                `json:"month"`
	Year              int                `json:"year"`
	MonthlyAttendance []MonthlyWeekBlock `json:"monthly_attendance"`
}

type CreateOrUpdateResponse struct {
	Date    string            `json:"date"`
	Status  string            `json:"status"`
	Student AttendanceStudent `json:"student"`
}

type CreateOrUpdateManyResponse struct {
	Date               string                   `json:"date"`
	Class              string                   `json:"class"`
	StudentAttendances []AttendanceEntryRequest `json:"student_attendances"`
}
