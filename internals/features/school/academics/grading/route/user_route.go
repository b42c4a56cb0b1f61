// file: internals/features/school/academics/grading/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingController "schoolku_backend/internals/features/school/academics/grading/controller"
)

// GradingUserRoutes di-mount di bawah /api/u (sudah lewat AuthJWT)
func GradingUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	reportCtl := gradingController.NewReportController(db, v)

	user.Get("/reports/:id", reportCtl.GetByID)
}
