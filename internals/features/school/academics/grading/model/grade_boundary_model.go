// file: internals/features/school/academics/grading/model/grade_boundary_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeBoundaryModel merepresentasikan tabel `grade_boundaries`.
// Satu baris = satu rentang nilai → grade. Urutan lookup mengikuti
// grade_boundary_position (kebijakan pemilik konfigurasi, bukan resolver).
type GradeBoundaryModel struct {
	// PK
	GradeBoundaryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_boundary_id" json:"grade_boundary_id"`

	// Business columns
	GradeBoundaryGrade    string  `gorm:"type:varchar(8);not null;column:grade_boundary_grade" json:"grade_boundary_grade"`
	GradeBoundaryMinScore float64 `gorm:"type:numeric(5,2);not null;column:grade_boundary_min_score" json:"grade_boundary_min_score"`
	GradeBoundaryMaxScore float64 `gorm:"type:numeric(5,2);not null;column:grade_boundary_max_score" json:"grade_boundary_max_score"`
	GradeBoundaryPoints   float64 `gorm:"type:numeric(5,2);not null;default:0;column:grade_boundary_points" json:"grade_boundary_points"`
	GradeBoundaryRemark   string  `gorm:"type:text;not null;default:'';column:grade_boundary_remark" json:"grade_boundary_remark"`

	// Bobot division (dipakai template rapor tertentu)
	GradeBoundaryDivisionWeight float64 `gorm:"type:numeric(5,2);not null;default:0;column:grade_boundary_division_weight" json:"grade_boundary_division_weight"`

	// Urutan scan saat resolve (ascending)
	GradeBoundaryPosition int  `gorm:"type:integer;not null;default:0;column:grade_boundary_position;index:idx_grade_boundaries_active_position,priority:2" json:"grade_boundary_position"`
	GradeBoundaryIsActive bool `gorm:"not null;default:true;column:grade_boundary_is_active;index:idx_grade_boundaries_active_position,priority:1" json:"grade_boundary_is_active"`

	// Audit / Soft delete
	GradeBoundaryCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:grade_boundary_created_at" json:"grade_boundary_created_at"`
	GradeBoundaryUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:grade_boundary_updated_at" json:"grade_boundary_updated_at"`
	GradeBoundaryDeletedAt gorm.DeletedAt `gorm:"column:grade_boundary_deleted_at;index" json:"grade_boundary_deleted_at,omitempty"`
}

func (GradeBoundaryModel) TableName() string { return "grade_boundaries" }

// Contains cek apakah skor masuk rentang (inklusif dua sisi)
func (m GradeBoundaryModel) Contains(score float64) bool {
	return m.GradeBoundaryMinScore <= score && score <= m.GradeBoundaryMaxScore
}

// ============ Hooks: validation & light normalization ============
func (m *GradeBoundaryModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: max >= min
	if m.GradeBoundaryMaxScore < m.GradeBoundaryMinScore {
		return errors.New("grade_boundary_max_score must be >= grade_boundary_min_score")
	}

	m.GradeBoundaryGrade = strings.TrimSpace(m.GradeBoundaryGrade)
	m.GradeBoundaryRemark = strings.TrimSpace(m.GradeBoundaryRemark)
	if m.GradeBoundaryGrade == "" {
		return errors.New("grade_boundary_grade wajib diisi")
	}
	return nil
}
