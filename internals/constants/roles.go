package constants

import "fmt"

// Role user sesuai enum di database
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleParent  = "PARENT"
)

// Template pesan error role
const (
	ErrOnlyAdminTeacherCanAccess = "❌ Hanya admin atau teacher yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess       = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyParentsCanAccess      = "❌ Hanya parent yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdminTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminTeacherCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleParent,
	}

	AdminTeacher = []string{
		RoleAdmin,
		RoleTeacher,
	}

	AdminParent = []string{
		RoleAdmin,
		RoleParent,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
