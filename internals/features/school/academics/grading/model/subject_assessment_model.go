// file: internals/features/school/academics/grading/model/subject_assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status submission penilaian. Rapor hanya membaca yang approved;
// approval sendiri dikerjakan modul supervisi (di luar core ini).
const (
	AssessmentStatusDraft     = "draft"
	AssessmentStatusSubmitted = "submitted"
	AssessmentStatusApproved  = "approved"
	AssessmentStatusRejected  = "rejected"
)

// SubjectAssessmentModel merepresentasikan tabel `subject_assessments`.
// Satu baris = nilai satu mapel utk satu siswa pada satu (tahun ajaran, term).
//
// Dua varian data hidup berdampingan:
//   - terstruktur: a1/a2/a3 (continuous assessment) + exam
//   - legacy: hanya flat marks (submission lama sebelum kolom CA ada)
type SubjectAssessmentModel struct {
	// PK
	SubjectAssessmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_assessment_id" json:"subject_assessment_id"`

	// Keys
	SubjectAssessmentStudentID      uuid.UUID `gorm:"type:uuid;not null;column:subject_assessment_student_id;index:idx_subject_assessments_student_term,priority:1" json:"subject_assessment_student_id"`
	SubjectAssessmentAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:subject_assessment_academic_year_id;index:idx_subject_assessments_student_term,priority:2" json:"subject_assessment_academic_year_id"`
	SubjectAssessmentTerm           string    `gorm:"type:varchar(24);not null;column:subject_assessment_term;index:idx_subject_assessments_student_term,priority:3" json:"subject_assessment_term"`

	// Snapshot mapel (loose-coupling ke tabel subjects)
	SubjectAssessmentSubjectCode string `gorm:"type:varchar(24);not null;column:subject_assessment_subject_code" json:"subject_assessment_subject_code"`
	SubjectAssessmentSubjectName string `gorm:"type:varchar(120);not null;column:subject_assessment_subject_name" json:"subject_assessment_subject_name"`

	// Komponen nilai (pointer: bedakan "tidak diisi" vs 0)
	SubjectAssessmentA1   *float64 `gorm:"type:numeric(5,2);column:subject_assessment_a1" json:"subject_assessment_a1,omitempty"`
	SubjectAssessmentA2   *float64 `gorm:"type:numeric(5,2);column:subject_assessment_a2" json:"subject_assessment_a2,omitempty"`
	SubjectAssessmentA3   *float64 `gorm:"type:numeric(5,2);column:subject_assessment_a3" json:"subject_assessment_a3,omitempty"`
	SubjectAssessmentExam *float64 `gorm:"type:numeric(5,2);column:subject_assessment_exam" json:"subject_assessment_exam,omitempty"`

	// Legacy flat marks (fallback total saat komponen tidak lengkap)
	SubjectAssessmentMarks *float64 `gorm:"type:numeric(5,2);column:subject_assessment_marks" json:"subject_assessment_marks,omitempty"`

	// Identifier: flag pencapaian manual dari guru (bukan turunan skala)
	SubjectAssessmentIdentifier *int `gorm:"type:integer;column:subject_assessment_identifier" json:"subject_assessment_identifier,omitempty"`

	SubjectAssessmentRemark          *string `gorm:"type:text;column:subject_assessment_remark" json:"subject_assessment_remark,omitempty"`
	SubjectAssessmentTeacherInitials *string `gorm:"type:varchar(12);column:subject_assessment_teacher_initials" json:"subject_assessment_teacher_initials,omitempty"`

	SubjectAssessmentStatus string `gorm:"type:varchar(16);not null;default:'draft';column:subject_assessment_status;index" json:"subject_assessment_status"`

	// Audit / Soft delete
	SubjectAssessmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:subject_assessment_created_at" json:"subject_assessment_created_at"`
	SubjectAssessmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:subject_assessment_updated_at" json:"subject_assessment_updated_at"`
	SubjectAssessmentDeletedAt gorm.DeletedAt `gorm:"column:subject_assessment_deleted_at;index" json:"subject_assessment_deleted_at,omitempty"`
}

func (SubjectAssessmentModel) TableName() string { return "subject_assessments" }

// IsLegacy true bila baris hanya membawa flat marks (tanpa komponen terstruktur)
func (m SubjectAssessmentModel) IsLegacy() bool {
	return m.SubjectAssessmentA1 == nil &&
		m.SubjectAssessmentA2 == nil &&
		m.SubjectAssessmentA3 == nil &&
		m.SubjectAssessmentExam == nil &&
		m.SubjectAssessmentMarks != nil
}

// IsApproved shortcut status
func (m SubjectAssessmentModel) IsApproved() bool {
	return m.SubjectAssessmentStatus == AssessmentStatusApproved
}
