package helper

import "github.com/gofiber/fiber/v2"

// CheckAllowedRole memastikan role yang login ada di daftar allowed.
// Role kosong atau tidak terdaftar → 403.
func CheckAllowedRole(allowed []string, role string) error {
	if role == "" {
		return fiber.NewError(fiber.StatusForbidden, "You dont insert the role!")
	}
	if len(allowed) == 0 {
		return fiber.NewError(fiber.StatusForbidden, "You dont insert roles to lookup!")
	}
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "Unauthorized, Forbidden Access!")
}

// IsAllowedRole versi tanpa error, untuk cabang logika biasa
func IsAllowedRole(allowed []string, role string) bool {
	return CheckAllowedRole(allowed, role) == nil
}
