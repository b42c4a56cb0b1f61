// file: internals/features/school/academics/grading/model/report_comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CommentTypeClassTeacher = "class_teacher"
	CommentTypeHeadTeacher  = "head_teacher"
)

// ReportCommentModel merepresentasikan tabel `report_comments`.
// Komentar wali kelas / kepala sekolah per (student, year, term).
type ReportCommentModel struct {
	ReportCommentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_comment_id" json:"report_comment_id"`

	ReportCommentStudentID      uuid.UUID `gorm:"type:uuid;not null;column:report_comment_student_id;uniqueIndex:uq_report_comments_key,priority:1" json:"report_comment_student_id"`
	ReportCommentAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:report_comment_academic_year_id;uniqueIndex:uq_report_comments_key,priority:2" json:"report_comment_academic_year_id"`
	ReportCommentTerm           string    `gorm:"type:varchar(24);not null;column:report_comment_term;uniqueIndex:uq_report_comments_key,priority:3" json:"report_comment_term"`
	ReportCommentType           string    `gorm:"type:varchar(16);not null;column:report_comment_type;uniqueIndex:uq_report_comments_key,priority:4" json:"report_comment_type"`

	ReportCommentBody string `gorm:"type:text;not null;default:'';column:report_comment_body" json:"report_comment_body"`

	ReportCommentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:report_comment_created_at" json:"report_comment_created_at"`
	ReportCommentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:report_comment_updated_at" json:"report_comment_updated_at"`
	ReportCommentDeletedAt gorm.DeletedAt `gorm:"column:report_comment_deleted_at;index" json:"report_comment_deleted_at,omitempty"`
}

func (ReportCommentModel) TableName() string { return "report_comments" }
