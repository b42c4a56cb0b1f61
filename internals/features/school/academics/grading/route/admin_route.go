// file: internals/features/school/academics/grading/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingController "schoolku_backend/internals/features/school/academics/grading/controller"
	"schoolku_backend/internals/middlewares"
)

// GradingAdminRoutes di-mount di bawah /api/a (sudah lewat AuthJWT + IsSchoolAdmin)
func GradingAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	reportCtl := gradingController.NewReportController(db, v)
	boundaryCtl := gradingController.NewGradeBoundaryController(db, v)

	reports := admin.Group("/reports")
	reports.Post("/generate", middlewares.GenerateReportRateLimiter(), reportCtl.Generate)
	reports.Get("/", reportCtl.List)
	reports.Patch("/:id/publish", reportCtl.Publish)

	boundaries := admin.Group("/grade-boundaries")
	boundaries.Post("/", boundaryCtl.Create)
	boundaries.Get("/", boundaryCtl.List)
	boundaries.Patch("/:id", boundaryCtl.Patch)
	boundaries.Delete("/:id", boundaryCtl.Delete)
}
