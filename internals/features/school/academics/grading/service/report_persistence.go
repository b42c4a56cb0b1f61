// file: internals/features/school/academics/grading/service/report_persistence.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/school/academics/grading/dto"
	"schoolku_backend/internals/features/school/academics/grading/model"
)

/* ============================================
   Writer boundary (storage kolaborator)
============================================ */

type ReportWriter interface {
	// Upsert keyed (student, year, term); conflict = overwrite kolom nilai
	UpsertReport(ctx context.Context, row *model.GeneratedReportModel) error
	// Reload row kanonik by key (saat conflict, PK lama yang menang)
	FindReportByKey(ctx context.Context, studentID, yearID uuid.UUID, term string) (*model.GeneratedReportModel, error)
	AppendAudit(ctx context.Context, entry *model.ReportAuditLogModel) error
}

type gormReportWriter struct{ db *gorm.DB }

func (w gormReportWriter) UpsertReport(ctx context.Context, row *model.GeneratedReportModel) error {
	now := time.Now()
	// Kolom nilai + kode verifikasi di-overwrite saat conflict;
	// identity key & status TIDAK disentuh (publish tidak ter-reset
	// oleh compile ulang).
	return w.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "generated_report_student_id"},
			{Name: "generated_report_academic_year_id"},
			{Name: "generated_report_term"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"generated_report_overall_average":      row.GeneratedReportOverallAverage,
			"generated_report_overall_grade":        row.GeneratedReportOverallGrade,
			"generated_report_overall_identifier":   row.GeneratedReportOverallIdentifier,
			"generated_report_overall_achievement":  row.GeneratedReportOverallAchievement,
			"generated_report_graded_subject_count": row.GeneratedReportGradedSubjectCount,
			"generated_report_generated_by":         row.GeneratedReportGeneratedBy,
			"generated_report_generated_at":         row.GeneratedReportGeneratedAt,
			"generated_report_verification_code":    row.GeneratedReportVerificationCode,
			"generated_report_payload":              row.GeneratedReportPayload,
			"generated_report_updated_at":           now,
		}),
	}).Create(row).Error
}

func (w gormReportWriter) FindReportByKey(ctx context.Context, studentID, yearID uuid.UUID, term string) (*model.GeneratedReportModel, error) {
	var saved model.GeneratedReportModel
	if err := w.db.WithContext(ctx).
		Where("generated_report_student_id = ? AND generated_report_academic_year_id = ? AND generated_report_term = ?",
			studentID, yearID, term).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (w gormReportWriter) AppendAudit(ctx context.Context, entry *model.ReportAuditLogModel) error {
	return w.db.WithContext(ctx).Create(entry).Error
}

/* ============================================
   Persistence
============================================ */

// ReportPersistence menyimpan hasil compile: upsert satu row per
// (student, year, term) + satu audit entry per save sukses.
type ReportPersistence struct {
	Writer ReportWriter
}

func NewReportPersistence(db *gorm.DB) *ReportPersistence {
	return &ReportPersistence{Writer: gormReportWriter{db: db}}
}

// SaveResult hasil Save. AuditLogged=false berarti rapor tersimpan tapi
// audit trail gagal ditulis (non-fatal, sudah di-log utk operator).
type SaveResult struct {
	Report      *model.GeneratedReportModel
	AuditLogged bool
}

// GenerateVerificationCode: prefix stabil dari student_id + base-36 timestamp,
// uppercase. Unik per pemanggilan — compile ulang menghasilkan kode BARU
// (kode lama hangus).
func (p *ReportPersistence) GenerateVerificationCode(studentID uuid.UUID) string {
	prefix := strings.ToUpper(strings.ReplaceAll(studentID.String(), "-", "")[:8])
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return "RPT-" + prefix + "-" + ts
}

// isUniqueViolation deteksi 23505 dari pgx (driver aktif) maupun lib/pq
func isUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}

// buildReportRow petakan payload compile → row storage (status selalu draft;
// publish urusan endpoint terpisah).
func buildReportRow(payload *dto.ReportPayload, generatedBy uuid.UUID, code string, now time.Time) (*model.GeneratedReportModel, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &model.GeneratedReportModel{
		GeneratedReportStudentID:      payload.Student.StudentID,
		GeneratedReportAcademicYearID: payload.Term.AcademicYearID,
		GeneratedReportTerm:           payload.Term.Term,

		GeneratedReportOverallAverage:     payload.Summary.OverallAverage,
		GeneratedReportOverallGrade:       payload.Summary.OverallGrade,
		GeneratedReportOverallIdentifier:  payload.Summary.OverallIdentifier,
		GeneratedReportOverallAchievement: payload.Summary.OverallAchievement,
		GeneratedReportGradedSubjectCount: payload.Summary.GradedSubjectCount,

		GeneratedReportStatus:      model.ReportStatusDraft,
		GeneratedReportGeneratedBy: generatedBy,
		GeneratedReportGeneratedAt: now,

		GeneratedReportVerificationCode: code,
		GeneratedReportPayload:          datatypes.JSON(raw),
	}, nil
}

// Save upsert GeneratedReport keyed (student, year, term).
// Atomik terhadap key: dua compile hampir-bersamaan utk key yang sama
// berakhir di SATU row konsisten (unique index + ON CONFLICT), bukan
// lost update atau row ganda.
func (p *ReportPersistence) Save(ctx context.Context, payload *dto.ReportPayload, generatedBy uuid.UUID) (*SaveResult, error) {
	if payload == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payload rapor kosong")
	}
	if generatedBy == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "generated_by wajib diisi")
	}

	code := p.GenerateVerificationCode(payload.Student.StudentID)
	row, err := buildReportRow(payload, generatedBy, code, time.Now())
	if err != nil {
		return nil, err
	}

	if err := p.Writer.UpsertReport(ctx, row); err != nil {
		// Race insert-pertama di bawah PgBouncer masih bisa memunculkan 23505;
		// conflict harus berakhir "overwrite", bukan error → coba sekali lagi.
		if !isUniqueViolation(err) {
			return nil, err
		}
		if err2 := p.Writer.UpsertReport(ctx, row); err2 != nil {
			return nil, err2
		}
	}

	saved, err := p.Writer.FindReportByKey(ctx,
		row.GeneratedReportStudentID, row.GeneratedReportAcademicYearID, row.GeneratedReportTerm)
	if err != nil {
		return nil, err
	}

	res := &SaveResult{Report: saved, AuditLogged: true}

	// Audit append-only: gagal audit TIDAK me-rollback rapor —
	// cukup dicatat utk operator.
	if err := p.appendAudit(ctx, saved); err != nil {
		log.Printf("[WARN] audit generate_report gagal utk report %s: %v", saved.GeneratedReportID, err)
		res.AuditLogged = false
	}
	return res, nil
}

func (p *ReportPersistence) appendAudit(ctx context.Context, rpt *model.GeneratedReportModel) error {
	details, err := json.Marshal(map[string]any{
		"term":              rpt.GeneratedReportTerm,
		"academic_year_id":  rpt.GeneratedReportAcademicYearID,
		"verification_code": rpt.GeneratedReportVerificationCode,
		"overall_average":   rpt.GeneratedReportOverallAverage,
	})
	if err != nil {
		return err
	}

	entry := model.ReportAuditLogModel{
		ReportAuditLogActorID:    rpt.GeneratedReportGeneratedBy,
		ReportAuditLogAction:     model.AuditActionGenerateReport,
		ReportAuditLogTargetType: "generated_report",
		ReportAuditLogTargetID:   rpt.GeneratedReportID,
		ReportAuditLogDetails:    datatypes.JSON(details),
	}
	return p.Writer.AppendAudit(ctx, &entry)
}
