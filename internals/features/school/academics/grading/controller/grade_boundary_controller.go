// file: internals/features/school/academics/grading/controller/grade_boundary_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/academics/grading/dto"
	model "schoolku_backend/internals/features/school/academics/grading/model"
	service "schoolku_backend/internals/features/school/academics/grading/service"
	helper "schoolku_backend/internals/helpers"
)

type GradeBoundaryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGradeBoundaryController(db *gorm.DB, v *validator.Validate) *GradeBoundaryController {
	if v == nil {
		v = validator.New()
	}
	return &GradeBoundaryController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin)
   POST /api/a/grade-boundaries
============================================ */

func (ctl *GradeBoundaryController) Create(c *fiber.Ctx) error {
	var p dto.GradeBoundaryCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat grade boundary")
	}

	// Warning konfigurasi (gap/overlap) ikut dikirim supaya admin langsung tahu
	issues := ctl.activeScaleIssues(c)

	return helper.JsonCreated(c, "Berhasil membuat grade boundary", fiber.Map{
		"grade_boundary": ent,
		"scale_issues":   issues,
	})
}

/* ============================================
   LIST (admin)
   GET /api/a/grade-boundaries?active=
============================================ */

func (ctl *GradeBoundaryController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.GradeBoundaryModel{})

	switch strings.ToLower(strings.TrimSpace(c.Query("active"))) {
	case "true", "1":
		q = q.Where("grade_boundary_is_active = ?", true)
	case "false", "0":
		q = q.Where("grade_boundary_is_active = ?", false)
	}

	var rows []model.GradeBoundaryModel
	if err := q.
		Order("grade_boundary_position ASC, grade_boundary_min_score DESC").
		Find(&rows).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"grade_boundaries": rows,
		"scale_issues":     ctl.activeScaleIssues(c),
	})
}

/* ============================================
   PATCH (admin)
   PATCH /api/a/grade-boundaries/:id
============================================ */

func (ctl *GradeBoundaryController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.GradeBoundaryUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var ent model.GradeBoundaryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("grade_boundary_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Grade boundary tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p.ApplyUpdates(&ent)
	if ent.GradeBoundaryMaxScore < ent.GradeBoundaryMinScore {
		return httpErr(c, fiber.StatusUnprocessableEntity, "max_score harus >= min_score")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengubah grade boundary")
	}

	return helper.JsonUpdated(c, "Berhasil mengubah grade boundary", fiber.Map{
		"grade_boundary": ent,
		"scale_issues":   ctl.activeScaleIssues(c),
	})
}

/* ============================================
   DELETE (admin, soft delete)
   DELETE /api/a/grade-boundaries/:id
============================================ */

func (ctl *GradeBoundaryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("grade_boundary_id = ?", id).
		Delete(&model.GradeBoundaryModel{})
	if res.Error != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus grade boundary")
	}
	if res.RowsAffected == 0 {
		return httpErr(c, fiber.StatusNotFound, "Grade boundary tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Berhasil menghapus grade boundary", fiber.Map{
		"grade_boundary_id": id,
		"scale_issues":      ctl.activeScaleIssues(c),
	})
}

// activeScaleIssues hitung gap/overlap skala aktif; error load dianggap
// "tidak ada temuan" supaya CRUD tidak ikut gagal.
func (ctl *GradeBoundaryController) activeScaleIssues(c *fiber.Ctx) []service.ScaleIssue {
	sc, err := service.LoadActiveScale(c.UserContext(), ctl.DB)
	if err != nil {
		return nil
	}
	return sc.Check()
}
