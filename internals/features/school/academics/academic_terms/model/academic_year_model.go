// file: internals/features/school/academics/academic_terms/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicYearModel merepresentasikan tabel `academic_years`.
// Example label: "2025/2026"
type AcademicYearModel struct {
	AcademicYearID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`

	AcademicYearLabel     string    `gorm:"type:varchar(16);not null;column:academic_year_label;uniqueIndex" json:"academic_year_label"`
	AcademicYearStartDate time.Time `gorm:"type:date;not null;column:academic_year_start_date" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"type:date;not null;column:academic_year_end_date" json:"academic_year_end_date"`
	AcademicYearIsActive  bool      `gorm:"not null;default:false;column:academic_year_is_active;index" json:"academic_year_is_active"`

	AcademicYearCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_year_created_at" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_year_updated_at" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
