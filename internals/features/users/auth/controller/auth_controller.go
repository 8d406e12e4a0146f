package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* ===================== REGISTER ===================== */
// POST /api/v1/users/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserRole:     req.Role,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Register User", dto.AuthUserResponse{
		UserID:   user.UserID,
		UserName: user.UserName,
		Email:    user.UserEmail,
		Role:     user.UserRole,
	})
}

/* ===================== LOGIN ===================== */
// POST /api/v1/users/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_name = ? OR user_email = ?", req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := signAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Success Login", dto.LoginResponse{
		AccessToken: token,
		User: dto.AuthUserResponse{
			UserID:   user.UserID,
			UserName: user.UserName,
			Email:    user.UserEmail,
			Role:     user.UserRole,
		},
	})
}

func signAccessToken(user model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
