// Roster resolver: lookup kelas + daftar siswa terdaftar sebagai
// sumber kebenaran roster untuk rekonsiliasi absensi.
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/classes/model"
)

type ClassTeacher struct {
	ID   uuid.UUID `json:"id"`
	NIP  string    `json:"nip"`
	Name string    `json:"name"`
}

type RosterStudent struct {
	ID   uuid.UUID `json:"id"`
	NISN string    `json:"nisn"`
	Name string    `json:"name"`
}

// ClassContext adalah kelas + roster sebagai expected-student-set.
// Urutan Students mengikuti urutan natural dari store (tidak di-sort di sini).
type ClassContext struct {
	ID       uuid.UUID
	Name     string
	Teacher  ClassTeacher
	Students []RosterStudent
}

// ResolveClassRoster memuat kelas beserta rosternya.
// classID nil → 400, kelas tidak ada → 404.
func ResolveClassRoster(ctx context.Context, db *gorm.DB, classID uuid.UUID) (*ClassContext, error) {
	if classID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Class Id not inputted!")
	}

	var class model.ClassModel
	err := db.WithContext(ctx).
		Preload("Teacher.User").
		Where("class_id = ?", classID).
		First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}

	var enrollments []model.StudentClassModel
	err = db.WithContext(ctx).
		Preload("Student").
		Where("student_class_class_id = ?", classID).
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	out := &ClassContext{
		ID:   class.ClassID,
		Name: class.ClassName,
	}
	if class.Teacher != nil {
		out.Teacher = ClassTeacher{
			ID:  class.Teacher.TeacherID,
			NIP: class.Teacher.TeacherNIP,
		}
		if class.Teacher.User != nil {
			out.Teacher.Name = class.Teacher.User.UserName
		}
	}
	for _, enr := range enrollments {
		if enr.Student == nil {
			continue
		}
		out.Students = append(out.Students, RosterStudent{
			ID:   enr.Student.StudentID,
			NISN: enr.Student.StudentNISN,
			Name: enr.Student.StudentName,
		})
	}
	return out, nil
}

// ResolveStudent memastikan siswa ada. studentID nil → 400, tidak ada → 404.
func ResolveStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (*RosterStudent, error) {
	if studentID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Student Id not inputted!")
	}

	var student model.StudentModel
	err := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, err
	}

	return &RosterStudent{
		ID:   student.StudentID,
		NISN: student.StudentNISN,
		Name: student.StudentName,
	}, nil
}
