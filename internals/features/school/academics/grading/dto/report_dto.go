// file: internals/features/school/academics/grading/dto/report_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/grading/model"
)

// =======================
// Request DTO
// =======================

type GenerateReportRequest struct {
	StudentID      string `json:"student_id"       validate:"required,uuid4"`
	AcademicYearID string `json:"academic_year_id" validate:"required,uuid4"`
	Term           string `json:"term"             validate:"required,min=1,max=24"`
}

func (p *GenerateReportRequest) Normalize() {
	p.StudentID = strings.TrimSpace(p.StudentID)
	p.AcademicYearID = strings.TrimSpace(p.AcademicYearID)
	p.Term = strings.TrimSpace(p.Term)
}

// =======================
// Payload (hasil compile; dikembalikan ke caller & disimpan sbg snapshot JSONB)
// =======================

// SubjectReportRow: satu baris mapel siap-render.
// Turunan murni dari SubjectAssessment + skala aktif; tidak pernah disimpan sendiri.
type SubjectReportRow struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`

	A1    *float64 `json:"a1,omitempty"`
	A2    *float64 `json:"a2,omitempty"`
	A3    *float64 `json:"a3,omitempty"`
	AvgCA *float64 `json:"avg_ca,omitempty"`

	CAComponent   *float64 `json:"ca_component,omitempty"`
	ExamComponent *float64 `json:"exam_component,omitempty"`
	Total         *float64 `json:"total,omitempty"`

	// Identifier manual dari guru, passthrough (bukan turunan skala)
	Identifier *int `json:"identifier,omitempty"`

	Grade  string `json:"grade"`
	Remark string `json:"remark"`

	TeacherRemark   string `json:"teacher_remark,omitempty"`
	TeacherInitials string `json:"teacher_initials,omitempty"`
}

type ReportSummary struct {
	OverallAverage     float64 `json:"overall_average"`
	GradedSubjectCount int     `json:"graded_subject_count"`
	OverallGrade       string  `json:"overall_grade"`
	OverallIdentifier  int     `json:"overall_identifier"`
	OverallAchievement string  `json:"overall_achievement"`

	ClassTeacherComment string `json:"class_teacher_comment,omitempty"`
	HeadTeacherComment  string `json:"head_teacher_comment,omitempty"`
}

type StudentMeta struct {
	StudentID   uuid.UUID  `json:"student_id"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	AdmissionNo string     `json:"admission_no,omitempty"`
	Section     string     `json:"section,omitempty"`
	House       string     `json:"house,omitempty"`
}

type SchoolMeta struct {
	Name       string `json:"name,omitempty"`
	Motto      string `json:"motto,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	LogoURL    string `json:"logo_url,omitempty"`
	FooterText string `json:"footer_text,omitempty"`
}

type TermMeta struct {
	AcademicYearID uuid.UUID  `json:"academic_year_id"`
	YearLabel      string     `json:"year_label,omitempty"`
	Term           string     `json:"term"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	NextTermStart  *time.Time `json:"next_term_start,omitempty"`
	FeeNote        string     `json:"fee_note,omitempty"`
}

// GradeBoundaryLite: skala yang dipakai saat compile (utk legenda di rapor)
type GradeBoundaryLite struct {
	Grade    string  `json:"grade"`
	MinScore float64 `json:"min_score"`
	MaxScore float64 `json:"max_score"`
	Points   float64 `json:"points"`
	Remark   string  `json:"remark"`
}

type ReportPayload struct {
	Student  StudentMeta         `json:"student"`
	School   SchoolMeta          `json:"school"`
	Term     TermMeta            `json:"term"`
	Subjects []SubjectReportRow  `json:"subjects"`
	Summary  ReportSummary       `json:"summary"`
	Scale    []GradeBoundaryLite `json:"scale,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// =======================
// Response DTO
// =======================

type GeneratedReportResponse struct {
	GeneratedReportID                 uuid.UUID `json:"generated_report_id"`
	GeneratedReportStudentID          uuid.UUID `json:"generated_report_student_id"`
	GeneratedReportAcademicYearID     uuid.UUID `json:"generated_report_academic_year_id"`
	GeneratedReportTerm               string    `json:"generated_report_term"`
	GeneratedReportOverallAverage     float64   `json:"generated_report_overall_average"`
	GeneratedReportOverallGrade       string    `json:"generated_report_overall_grade"`
	GeneratedReportOverallIdentifier  int       `json:"generated_report_overall_identifier"`
	GeneratedReportOverallAchievement string    `json:"generated_report_overall_achievement"`
	GeneratedReportGradedSubjectCount int       `json:"generated_report_graded_subject_count"`
	GeneratedReportStatus             string    `json:"generated_report_status"`
	GeneratedReportGeneratedBy        uuid.UUID `json:"generated_report_generated_by"`
	GeneratedReportGeneratedAt        time.Time `json:"generated_report_generated_at"`
	GeneratedReportVerificationCode   string    `json:"generated_report_verification_code"`
}

// Mapper entity -> response
func FromGeneratedReportModel(ent model.GeneratedReportModel) GeneratedReportResponse {
	return GeneratedReportResponse{
		GeneratedReportID:                 ent.GeneratedReportID,
		GeneratedReportStudentID:          ent.GeneratedReportStudentID,
		GeneratedReportAcademicYearID:     ent.GeneratedReportAcademicYearID,
		GeneratedReportTerm:               ent.GeneratedReportTerm,
		GeneratedReportOverallAverage:     ent.GeneratedReportOverallAverage,
		GeneratedReportOverallGrade:       ent.GeneratedReportOverallGrade,
		GeneratedReportOverallIdentifier:  ent.GeneratedReportOverallIdentifier,
		GeneratedReportOverallAchievement: ent.GeneratedReportOverallAchievement,
		GeneratedReportGradedSubjectCount: ent.GeneratedReportGradedSubjectCount,
		GeneratedReportStatus:             ent.GeneratedReportStatus,
		GeneratedReportGeneratedBy:        ent.GeneratedReportGeneratedBy,
		GeneratedReportGeneratedAt:        ent.GeneratedReportGeneratedAt,
		GeneratedReportVerificationCode:   ent.GeneratedReportVerificationCode,
	}
}

func FromGeneratedReportModels(list []model.GeneratedReportModel) []GeneratedReportResponse {
	out := make([]GeneratedReportResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromGeneratedReportModel(it))
	}
	return out
}
