package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/service"
	reportService "sekolahku_backend/internals/features/school/reports/service"
	helper "sekolahku_backend/internals/helpers"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

type AttendanceController struct {
	DB       *gorm.DB
	Service  *service.AttendanceService
	Renderer reportService.TableRenderer
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Service:  service.NewAttendanceService(service.NewGormStore(db)),
		Renderer: reportService.NewPDFRenderer(),
	}
}

func parseClassID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Class Id not inputted!")
	}
	return id, nil
}

func parseStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Student Id not inputted!")
	}
	return id, nil
}

/* ===================== READS ===================== */

// GET /api/v1/attendances/class/:classId/details?studentId=&date=
func (ctrl *AttendanceController) GetAttendanceDetails(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, _ := uuid.Parse(c.Query("studentId"))

	result, err := ctrl.Service.GetAttendanceDetails(c.UserContext(), dto.GetAttendanceDetailsRequest{
		LoggedUserRole: authmw.LoggedUserRole(c),
		ClassID:        classID,
		StudentID:      studentID,
		Date:           c.Query("date"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Success Get Attendance Details", result)
}

// GET /api/v1/attendances/class/:classId/daily?date=
func (ctrl *AttendanceController) GetDailyAttendance(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := ctrl.Service.GetDailyAttendance(c.UserContext(), dto.GetDailyAttendanceRequest{
		LoggedUserRole: authmw.LoggedUserRole(c),
		ClassID:        classID,
		Date:           c.Query("date"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Success Get Daily Attendance", result)
}

// GET /api/v1/attendances/class/:classId/weekly?year=&month=&week=
func (ctrl *AttendanceController) GetWeeklyAttendance(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := ctrl.Service.GetWeeklyAttendance(c.UserContext(), dto.GetWeeklyAttendanceRequest{
		LoggedUserRole: authmw.LoggedUserRole(c),
		ClassID:        classID,
		Year:           c.QueryInt("year"),
		Month:          c.QueryInt("month"),
		Week:           c.QueryInt("week"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Success Get Weekly Attendance", result)
}

// GET /api/v1/attendances/class/:classId/weekly/student/:studentId?year=&month=&week=
func (ctrl *AttendanceController) GetStudentWeeklyAttendance(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := ctrl.Service.GetStudentWeeklyAttendance(c.UserContext(), dto.GetStudentWeeklyAttendanceRequest{
		LoggedUserRole: authmw.LoggedUserRole(c),
		ClassID:        classID,
		StudentID:      studentID,
		Year:           c.QueryInt("year"),
		Month:          c.QueryInt("month"),
		Week:           c.QueryInt("week"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Success Get Student Weekly Attendance", result)
}

// GET /api/v1/attendances/class/:classId/monthly/student/:studentId?year=&month=
func (ctrl *AttendanceController) GetStudentMonthlyAttendance(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := ctrl.Service.GetStudentMonthlyAttendance(c.UserContext(), dto.GetStudentMonthlyAttendanceRequest{
		LoggedUserRole: authmw.LoggedUserRole(c),
		ClassID:        classID,
		StudentID:      studentID,
		Year:           c.QueryInt("year"),
		Month:          c.QueryInt("month"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Success Get Student Monthly Attendance", result)
}

/* ===================== WRITES ===================== */

// POST /api/v1/attendances/class/:classId/update-attendance
func (ctrl *AttendanceController) CreateOrUpdateMany(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateOrUpdateManyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.LoggedUserRole = authmw.LoggedUserRole(c)
	req.ClassID = classID

	result, err := ctrl.Service.CreateOrUpdateMany(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Attendance", result)
}

// POST /api/v1/attendances/class/:classId/student/:studentId
func (ctrl *AttendanceController) CreateOrUpdate(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateOrUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.LoggedUserRole = authmw.LoggedUserRole(c)
	req.ClassID = classID
	req.StudentID = studentID

	result, err := ctrl.Service.CreateOrUpdate(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Or Update Attendance", result)
}

/* ===================== PDF EXPORTS ===================== */

func (ctrl *AttendanceController) sendPDF(c *fiber.Ctx, fileName, title string, columns []string, rows [][]string) error {
	pdfBytes, err := ctrl.Renderer.RenderTable(title, columns, rows)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
	return c.Send(pdfBytes)
}

// GET /api/v1/attendances/class/:classId/daily/pdf?date=
func (ctrl *AttendanceController) GetDailyAttendancePDF(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := ctrl.Service.GetDailyAttendance(c.UserContext(), dto.GetDailyAttendanceRequest{
		LoggedUserRole: authmw.LoggedUserRole(c),
		ClassID:        classID,
		Date:           c.Query("date"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	title, columns, rows := service.DailyTable(result)
	fileName := fmt.Sprintf("absensi_harian_%s_%s.pdf", result.Class, result.Date)
	return ctrl.sendPDF(c, fileName, title, columns, rows)
}

// GET /api/v1/attendances/class/:classId/weekly/pdf?year=&month=&week=
func (ctrl *AttendanceController) GetWeeklyAttendancePDF(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := ctrl.Service.GetWeeklyAttendance(c.UserContext(), dto.GetWeeklyAttendanceRequest{
		LoggedUserRole: authmw.LoggedUserRole(c),
		ClassID:        classID,
		Year:           c.QueryInt("year"),
		Month:          c.QueryInt("month"),
		Week:           c.QueryInt("week"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	title, columns, rows := service.WeeklyTable(result)
	fileName := fmt.Sprintf("absensi_mingguan_%s_minggu_%d.pdf", result.Class, result.Week)
	return ctrl.sendPDF(c, fileName, title, columns, rows)
}

// GET /api/v1/attendances/class/:classId/monthly/student/:studentId/pdf?year=&month=
func (ctrl *AttendanceController) GetStudentMonthlyAttendancePDF(c *fiber.Ctx) error {
	classID, err := parseClassID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := ctrl.Service.GetStudentMonthlyAttendance(c.UserContext(), dto.GetStudentMonthlyAttendanceRequest{
		LoggedUserRole: authmw.LoggedUserRole(c),
		ClassID:        classID,
		StudentID:      studentID,
		Year:           c.QueryInt("year"),
		Month:          c.QueryInt("month"),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	title, columns, rows := service.StudentMonthlyTable(result)
	fileName := fmt.Sprintf("absensi_bulanan_%s_%02d_%d.pdf", result.Student.NISN, result.Month, result.Year)
	return ctrl.sendPDF(c, fileName, title, columns, rows)
}
