// file: internals/features/school/academics/grading/route/public_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingController "schoolku_backend/internals/features/school/academics/grading/controller"
)

// GradingPublicRoutes di-mount di bawah /api/public (tanpa auth)
func GradingPublicRoutes(public fiber.Router, db *gorm.DB, v *validator.Validate) {
	reportCtl := gradingController.NewReportController(db, v)

	public.Get("/reports/verify/:code", reportCtl.Verify)
}
