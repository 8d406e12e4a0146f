package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	group := r.Group("/users")
	group.Post("/register", ctrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
