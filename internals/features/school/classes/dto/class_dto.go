package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateClassRequest struct {
	ClassName string     `json:"class_name" validate:"required,max=100"`
	TeacherID *uuid.UUID `json:"teacher_id" validate:"omitempty,uuid4"`
}

type CreateStudentRequest struct {
	NISN     string     `json:"nisn" validate:"required,max=20"`
	Name     string     `json:"name" validate:"required,max=100"`
	ParentID *uuid.UUID `json:"parent_id" validate:"omitempty,uuid4"`
}

type EnrollStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type TeacherResponse struct {
	ID   *uuid.UUID `json:"id"`
	NIP  *string    `json:"nip"`
	Name *string    `json:"name"`
}

type StudentResponse struct {
	ID   uuid.UUID `json:"id"`
	NISN string    `json:"nisn"`
	Name string    `json:"name"`
}

type ClassRosterResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Teacher      TeacherResponse   `json:"teacher"`
	StudentCount int               `json:"student_count"`
	Students     []StudentResponse `json:"students"`
}
