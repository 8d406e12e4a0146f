package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/classes/dto"
	"sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/features/school/classes/service"
	helper "sekolahku_backend/internals/helpers"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

/* ===================== CLASS ===================== */

// POST /api/v1/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	if err := helper.CheckAllowedRole(constants.AdminOnly, authmw.LoggedUserRole(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	class := model.ClassModel{
		ClassName:      req.ClassName,
		ClassTeacherID: req.TeacherID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Nama kelas sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Class", class)
}

// GET /api/v1/classes/:classId
func (ctrl *ClassController) GetClassRoster(c *fiber.Ctx) error {
	if err := helper.CheckAllowedRole(constants.AllRoles, authmw.LoggedUserRole(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Class Id not inputted!")
	}

	roster, err := service.ResolveClassRoster(c.UserContext(), ctrl.DB, classID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := dto.ClassRosterResponse{
		ID:           roster.ID,
		Name:         roster.Name,
		StudentCount: len(roster.Students),
		Students:     make([]dto.StudentResponse, 0, len(roster.Students)),
	}
	if roster.Teacher.ID != uuid.Nil {
		id, nip, name := roster.Teacher.ID, roster.Teacher.NIP, roster.Teacher.Name
		resp.Teacher = dto.TeacherResponse{ID: &id, NIP: &nip, Name: &name}
	}
	for _, s := range roster.Students {
		resp.Students = append(resp.Students, dto.StudentResponse{ID: s.ID, NISN: s.NISN, Name: s.Name})
	}

	return helper.Success(c, "Success Get Class", resp)
}

/* ===================== STUDENT ===================== */

// POST /api/v1/students
func (ctrl *ClassController) CreateStudent(c *fiber.Ctx) error {
	if err := helper.CheckAllowedRole(constants.AdminOnly, authmw.LoggedUserRole(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student := model.StudentModel{
		StudentNISN:     req.NISN,
		StudentName:     req.Name,
		StudentParentID: req.ParentID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "NISN sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Student", student)
}

// GET /api/v1/students/:studentId
func (ctrl *ClassController) GetStudent(c *fiber.Ctx) error {
	if err := helper.CheckAllowedRole(constants.AllRoles, authmw.LoggedUserRole(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Student Id not inputted!")
	}

	student, err := service.ResolveStudent(c.UserContext(), ctrl.DB, studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Success Get Student", dto.StudentResponse{
		ID: student.ID, NISN: student.NISN, Name: student.Name,
	})
}

/* ===================== ENROLLMENT ===================== */

// POST /api/v1/classes/:classId/students
func (ctrl *ClassController) EnrollStudent(c *fiber.Ctx) error {
	if err := helper.CheckAllowedRole(constants.AdminOnly, authmw.LoggedUserRole(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Class Id not inputted!")
	}

	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	if _, err := service.ResolveClassRoster(ctx, ctrl.DB, classID); err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := service.ResolveStudent(ctx, ctrl.DB, req.StudentID); err != nil {
		return helper.FromFiberError(c, err)
	}

	enrollment := model.StudentClassModel{
		StudentClassStudentID: req.StudentID,
		StudentClassClassID:   classID,
	}
	if err := ctrl.DB.WithContext(ctx).Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Siswa sudah terdaftar di kelas ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan siswa")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Enroll Student", enrollment)
}

// DELETE /api/v1/classes/:classId/students/:studentId
func (ctrl *ClassController) UnenrollStudent(c *fiber.Ctx) error {
	if err := helper.CheckAllowedRole(constants.AdminOnly, authmw.LoggedUserRole(c)); err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Class Id not inputted!")
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Student Id not inputted!")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("student_class_class_id = ? AND student_class_student_id = ?", classID, studentID).
		Delete(&model.StudentClassModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pendaftaran")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	return helper.Success(c, "Success Unenroll Student", nil)
}
