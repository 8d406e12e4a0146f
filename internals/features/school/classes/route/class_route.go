package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "sekolahku_backend/internals/features/school/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	// =====================
	// Classes & Roster
	// =====================
	classes := r.Group("/classes")
	classes.Post("/", ctrl.CreateClass)
	classes.Get("/:classId", ctrl.GetClassRoster)
	classes.Post("/:classId/students", ctrl.EnrollStudent)
	classes.Delete("/:classId/students/:studentId", ctrl.UnenrollStudent)

	// =====================
	// Students
	// =====================
	students := r.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Get("/:studentId", ctrl.GetStudent)
}
