// file: internals/features/school/academics/grading/model/generated_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ReportStatusDraft     = "draft"
	ReportStatusPublished = "published"
)

// GeneratedReportModel merepresentasikan tabel `generated_reports`.
// Satu baris per (student, academic_year, term) — dijaga unique index;
// compile ulang = overwrite kolom nilai, bukan baris baru.
type GeneratedReportModel struct {
	// PK
	GeneratedReportID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:generated_report_id" json:"generated_report_id"`

	// Identity key (serialization point utk upsert)
	GeneratedReportStudentID      uuid.UUID `gorm:"type:uuid;not null;column:generated_report_student_id;uniqueIndex:uq_generated_reports_student_year_term,priority:1" json:"generated_report_student_id"`
	GeneratedReportAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:generated_report_academic_year_id;uniqueIndex:uq_generated_reports_student_year_term,priority:2" json:"generated_report_academic_year_id"`
	GeneratedReportTerm           string    `gorm:"type:varchar(24);not null;column:generated_report_term;uniqueIndex:uq_generated_reports_student_year_term,priority:3" json:"generated_report_term"`

	// Ringkasan nilai (di-overwrite tiap compile)
	GeneratedReportOverallAverage     float64 `gorm:"type:numeric(5,2);not null;default:0;column:generated_report_overall_average" json:"generated_report_overall_average"`
	GeneratedReportOverallGrade       string  `gorm:"type:varchar(8);not null;default:'';column:generated_report_overall_grade" json:"generated_report_overall_grade"`
	GeneratedReportOverallIdentifier  int     `gorm:"type:integer;not null;default:0;column:generated_report_overall_identifier" json:"generated_report_overall_identifier"`
	GeneratedReportOverallAchievement string  `gorm:"type:varchar(32);not null;default:'';column:generated_report_overall_achievement" json:"generated_report_overall_achievement"`
	GeneratedReportGradedSubjectCount int     `gorm:"type:integer;not null;default:0;column:generated_report_graded_subject_count" json:"generated_report_graded_subject_count"`

	GeneratedReportStatus string `gorm:"type:varchar(16);not null;default:'draft';column:generated_report_status" json:"generated_report_status"`

	GeneratedReportGeneratedBy uuid.UUID `gorm:"type:uuid;not null;column:generated_report_generated_by" json:"generated_report_generated_by"`
	GeneratedReportGeneratedAt time.Time `gorm:"type:timestamptz;not null;column:generated_report_generated_at" json:"generated_report_generated_at"`

	// Kode verifikasi terbaru (kode lama hangus saat compile ulang)
	GeneratedReportVerificationCode string `gorm:"type:varchar(40);not null;column:generated_report_verification_code;index" json:"generated_report_verification_code"`

	// Snapshot payload utuh (JSONB) utk render/print tanpa re-compile
	GeneratedReportPayload datatypes.JSON `gorm:"type:jsonb;column:generated_report_payload" json:"generated_report_payload,omitempty"`

	// Audit
	GeneratedReportCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:generated_report_created_at" json:"generated_report_created_at"`
	GeneratedReportUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:generated_report_updated_at" json:"generated_report_updated_at"`
}

func (GeneratedReportModel) TableName() string { return "generated_reports" }
