package features

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// RequireRoles menolak request bila user tidak punya salah satu role yang diizinkan.
// errMsg dibangun lewat constants.RoleError* agar pesan konsisten.
func RequireRoles(errMsg string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasAnyRole(c, allowed) {
			return fiber.NewError(fiber.StatusForbidden, errMsg)
		}
		return c.Next()
	}
}

// IsSchoolAdmin shortcut untuk gate admin sekolah
func IsSchoolAdmin() fiber.Handler {
	return RequireRoles(constants.RoleErrorAdmin("rapor & penilaian"), constants.AdminAndAbove)
}
