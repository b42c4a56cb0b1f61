// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingRoute "schoolku_backend/internals/features/school/academics/grading/route"
	schoolkuMiddleware "schoolku_backend/internals/middlewares/auth_school"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()
	v := validator.New()

	jwtOpts := schoolkuMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== GROUPS =====================

	// PUBLIC → tanpa auth (verifikasi rapor lewat kode)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → cukup login
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		schoolkuMiddleware.AuthJWT(jwtOpts),
	)

	// ADMIN → login + role admin/owner
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		schoolkuMiddleware.AuthJWT(jwtOpts),
		featuresMiddleware.IsSchoolAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Grading routes...")
	gradingRoute.GradingPublicRoutes(public, db, v)
	gradingRoute.GradingUserRoutes(private, db, v)
	gradingRoute.GradingAdminRoutes(admin, db, v)

	// Uptime sederhana (dipakai monitoring internal)
	app.Get("/api/public/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})
}
