// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel `students`.
// Core rapor hanya membaca (profil/enrollment dikelola modul CRUD lain).
type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentFullName    string     `gorm:"type:varchar(120);not null;column:student_full_name" json:"student_full_name"`
	StudentGender      string     `gorm:"type:varchar(12);not null;default:'';column:student_gender" json:"student_gender"`
	StudentDateOfBirth *time.Time `gorm:"type:date;column:student_date_of_birth" json:"student_date_of_birth,omitempty"`

	StudentAdmissionNo string `gorm:"type:varchar(24);not null;column:student_admission_no;uniqueIndex" json:"student_admission_no"`
	StudentSection     string `gorm:"type:varchar(40);not null;default:'';column:student_section" json:"student_section"`
	StudentHouse       string `gorm:"type:varchar(40);not null;default:'';column:student_house" json:"student_house"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
