package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "sekolahku_backend/internals/features/school/attendance/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	group := r.Group("/attendances")

	// =====================
	// Rekap (JSON)
	// =====================
	group.Get("/class/:classId/details", ctrl.GetAttendanceDetails)
	group.Get("/class/:classId/daily", ctrl.GetDailyAttendance)
	group.Get("/class/:classId/weekly", ctrl.GetWeeklyAttendance)
	group.Get("/class/:classId/weekly/student/:studentId", ctrl.GetStudentWeeklyAttendance)
	group.Get("/class/:classId/monthly/student/:studentId", ctrl.GetStudentMonthlyAttendance)

	// =====================
	// Export PDF
	// =====================
	group.Get("/class/:classId/daily/pdf", ctrl.GetDailyAttendancePDF)
	group.Get("/class/:classId/weekly/pdf", ctrl.GetWeeklyAttendancePDF)
	group.Get("/class/:classId/monthly/student/:studentId/pdf", ctrl.GetStudentMonthlyAttendancePDF)

	// =====================
	// Input absensi
	// =====================
	group.Post("/class/:classId/update-attendance", ctrl.CreateOrUpdateMany)
	group.Post("/class/:classId/student/:studentId", ctrl.CreateOrUpdate)
}
