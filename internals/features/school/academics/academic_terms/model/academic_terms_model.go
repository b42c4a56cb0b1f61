// file: internals/features/school/academics/academic_terms/model/academic_terms_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicTermModel merepresentasikan tabel `academic_terms`.
// Keyed (academic_year_id, name). Example name: "Term 1" | "Term 2" | "Term 3".
type AcademicTermModel struct {
	// ============ PK & keys ============
	AcademicTermID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_term_id" json:"academic_term_id"`
	AcademicTermAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:academic_term_academic_year_id;uniqueIndex:uq_academic_terms_year_name,priority:1" json:"academic_term_academic_year_id"`
	AcademicTermName           string    `gorm:"type:varchar(24);not null;column:academic_term_name;uniqueIndex:uq_academic_terms_year_name,priority:2" json:"academic_term_name"`

	// ============ Periode ============
	AcademicTermStartDate     time.Time  `gorm:"type:timestamptz;not null;column:academic_term_start_date" json:"academic_term_start_date"`
	AcademicTermEndDate       time.Time  `gorm:"type:timestamptz;not null;column:academic_term_end_date" json:"academic_term_end_date"`
	AcademicTermNextTermStart *time.Time `gorm:"type:timestamptz;column:academic_term_next_term_start" json:"academic_term_next_term_start,omitempty"`

	// Catatan biaya yang tampil di footer rapor
	AcademicTermFeeNote *string `gorm:"type:text;column:academic_term_fee_note" json:"academic_term_fee_note,omitempty"`

	AcademicTermIsActive bool `gorm:"not null;default:true;column:academic_term_is_active" json:"academic_term_is_active"`

	// ============ Audit / Soft delete ============
	AcademicTermCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_term_created_at" json:"academic_term_created_at"`
	AcademicTermUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_term_updated_at" json:"academic_term_updated_at"`
	AcademicTermDeletedAt gorm.DeletedAt `gorm:"column:academic_term_deleted_at;index" json:"academic_term_deleted_at,omitempty"`
}

func (AcademicTermModel) TableName() string { return "academic_terms" }

// ============ Hooks: validation & light normalization ============
func (m *AcademicTermModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: end >= start
	if m.AcademicTermEndDate.Before(m.AcademicTermStartDate) {
		return errors.New("academic_term_end_date must be >= academic_term_start_date")
	}

	m.AcademicTermName = strings.TrimSpace(m.AcademicTermName)
	if m.AcademicTermName == "" {
		return errors.New("academic_term_name wajib diisi")
	}

	if m.AcademicTermFeeNote != nil {
		n := strings.TrimSpace(*m.AcademicTermFeeNote)
		if n == "" {
			m.AcademicTermFeeNote = nil
		} else {
			m.AcademicTermFeeNote = &n
		}
	}
	return nil
}
