// file: internals/features/school/academics/grading/controller/report_controller.go
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
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type ReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate

	Compiler    *service.ReportCompiler
	Persistence *service.ReportPersistence
}

func NewReportController(db *gorm.DB, v *validator.Validate) *ReportController {
	if v == nil {
		v = validator.New()
	}
	return &ReportController{
		DB:          db,
		Validator:   v,
		Compiler:    service.NewReportCompiler(db),
		Persistence: service.NewReportPersistence(db),
	}
}

/* ============================================
   RESP/ERR helpers
============================================ */

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

/* ============================================
   GENERATE (admin)
   POST /api/a/reports/generate
============================================ */

func (ctl *ReportController) Generate(c *fiber.Ctx) error {
	var p dto.GenerateReportRequest
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	studentID, err := uuid.Parse(p.StudentID)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	yearID, err := uuid.Parse(p.AcademicYearID)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "academic_year_id tidak valid")
	}

	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return httpErr(c, fe.Code, fe.Message)
		}
		return httpErr(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	payload, err := ctl.Compiler.Compile(c.UserContext(), studentID, yearID, p.Term)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return httpErr(c, fe.Code, fe.Message)
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menyusun rapor")
	}

	res, err := ctl.Persistence.Save(c.UserContext(), payload, actorID)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return httpErr(c, fe.Code, fe.Message)
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menyimpan rapor")
	}

	return helper.JsonCreated(c, "Berhasil generate rapor", fiber.Map{
		"report":       dto.FromGeneratedReportModel(*res.Report),
		"payload":      payload,
		"audit_logged": res.AuditLogged,
	})
}

/* ============================================
   LIST (admin)
   GET /api/a/reports?student_id=&academic_year_id=&term=&status=
============================================ */

func (ctl *ReportController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.GeneratedReportModel{})

	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return httpErr(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("generated_report_student_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("academic_year_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return httpErr(c, fiber.StatusBadRequest, "academic_year_id tidak valid")
		}
		q = q.Where("generated_report_academic_year_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("term")); s != "" {
		q = q.Where("generated_report_term = ?", s)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if s != model.ReportStatusDraft && s != model.ReportStatusPublished {
			return httpErr(c, fiber.StatusBadRequest, "status tidak valid")
		}
		q = q.Where("generated_report_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.GeneratedReportModel
	if err := q.
		Order("generated_report_generated_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", dto.FromGeneratedReportModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL (user)
   GET /api/u/reports/:id
============================================ */

func (ctl *ReportController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.GeneratedReportModel
	if err := ctl.DB.
		Where("generated_report_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"report":  dto.FromGeneratedReportModel(ent),
		"payload": ent.GeneratedReportPayload, // snapshot JSONB apa adanya
	})
}

/* ============================================
   PUBLISH (admin)
   PATCH /api/a/reports/:id/publish
============================================ */

func (ctl *ReportController) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.GeneratedReportModel
	if err := ctl.DB.
		Where("generated_report_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if ent.GeneratedReportStatus == model.ReportStatusPublished {
		return helper.JsonOK(c, "Rapor sudah published", dto.FromGeneratedReportModel(ent))
	}

	if err := ctl.DB.Model(&ent).
		Update("generated_report_status", model.ReportStatusPublished).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mem-publish rapor")
	}
	ent.GeneratedReportStatus = model.ReportStatusPublished

	return helper.JsonUpdated(c, "Berhasil mem-publish rapor", dto.FromGeneratedReportModel(ent))
}

/* ============================================
   VERIFY (public)
   GET /api/public/reports/verify/:code
============================================ */

func (ctl *ReportController) Verify(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return httpErr(c, fiber.StatusBadRequest, "Kode verifikasi wajib diisi")
	}

	var ent model.GeneratedReportModel
	if err := ctl.DB.
		Where("generated_report_verification_code = ?", code).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Kode lama hangus saat compile ulang — yang valid hanya kode terbaru
			return httpErr(c, fiber.StatusNotFound, "Kode verifikasi tidak dikenal")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa kode")
	}

	return helper.JsonOK(c, "Kode verifikasi valid", fiber.Map{
		"generated_report_id": ent.GeneratedReportID,
		"student_id":          ent.GeneratedReportStudentID,
		"academic_year_id":    ent.GeneratedReportAcademicYearID,
		"term":                ent.GeneratedReportTerm,
		"overall_average":     ent.GeneratedReportOverallAverage,
		"overall_grade":       ent.GeneratedReportOverallGrade,
		"status":              ent.GeneratedReportStatus,
		"generated_at":        ent.GeneratedReportGeneratedAt,
	})
}
