// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals keys (diisi oleh middleware AuthJWT)
============================================ */

const (
	LocUserID    = "user_id"    // string | uuid
	LocRole      = "role"       // string tunggal
	LocRoles     = "roles"      // []string (opsional)
	LocJWTClaims = "jwt_claims" // jwt.MapClaims mentah
)

/* ============================================
   Getters
============================================ */

// GetUserIDFromToken ambil user_id dari locals.
// Return 401 kalau belum login, 400 kalau format bukan UUID.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// GetRole ambil role tunggal dari locals ("" kalau tidak ada)
func GetRole(c *fiber.Ctx) string {
	if v := c.Locals(LocRole); v != nil {
		if s, ok := v.(string); ok {
			return strings.ToLower(strings.TrimSpace(s))
		}
	}
	return ""
}

// GetRoles ambil daftar role; fallback ke role tunggal
func GetRoles(c *fiber.Ctx) []string {
	if v := c.Locals(LocRoles); v != nil {
		switch arr := v.(type) {
		case []string:
			return arr
		case []any:
			out := make([]string, 0, len(arr))
			for _, it := range arr {
				if s, ok := it.(string); ok {
					out = append(out, strings.ToLower(strings.TrimSpace(s)))
				}
			}
			return out
		}
	}
	if r := GetRole(c); r != "" {
		return []string{r}
	}
	return nil
}

// HasAnyRole cek apakah user punya salah satu role yang diizinkan
func HasAnyRole(c *fiber.Ctx, allowed []string) bool {
	roles := GetRoles(c)
	for _, have := range roles {
		for _, want := range allowed {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
