// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	classRoute "sekolahku_backend/internals/features/school/classes/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	public := app.Group("/api/v1")
	authRoute.AuthRoutes(public, db)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up private routes...")
	private := app.Group("/api/v1", authmw.AuthMiddleware())
	classRoute.ClassRoutes(private, db)
	attendanceRoute.AttendanceRoutes(private, db)
}
