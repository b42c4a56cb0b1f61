// file: internals/features/school/academics/grading/service/report_compiler.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/grading/dto"
	"schoolku_backend/internals/features/school/academics/grading/model"
)

// Sentinel saat skala tidak mencakup overall average —
// rapor tetap selesai walau tabel grade bolong.
const (
	SentinelOverallGrade       = "F"
	SentinelOverallAchievement = "Basic"

	// Identifier default utk row yang gurunya tidak mengisi flag
	DefaultIdentifier = 2
)

// ReportCompiler mengorkestrasi compile rapor satu siswa utk (tahun, term):
// Fetching → Aggregating → Summarizing → Done, satu pass, tanpa retry
// (retry urusan caller di boundary request). Tidak pernah menulis storage.
type ReportCompiler struct {
	Assessments AssessmentReader
	Students    StudentReader
	School      SchoolReader
	Terms       TermReader
	Comments    CommentReader
	Scales      ScaleReader

	Agg Aggregator
}

// NewReportCompiler wiring default berbasis GORM
func NewReportCompiler(db *gorm.DB) *ReportCompiler {
	return &ReportCompiler{
		Assessments: gormAssessmentReader{db: db},
		Students:    gormStudentReader{db: db},
		School:      gormSchoolReader{db: db},
		Terms:       gormTermReader{db: db},
		Comments:    gormCommentReader{db: db},
		Scales:      gormScaleReader{db: db},
		Agg:         NewAggregator(),
	}
}

// Compile rakit payload rapor lengkap. Pure terhadap state rapor tersimpan:
// side effect hanya read kolaborator.
func (rc *ReportCompiler) Compile(ctx context.Context, studentID, yearID uuid.UUID, term string) (*dto.ReportPayload, error) {
	// Input error = fatal, SEBELUM read apa pun
	if studentID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "student_id wajib diisi")
	}
	if yearID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "academic_year_id wajib diisi")
	}
	if term == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "term wajib diisi")
	}

	// ===== Fetching =====
	student, err := rc.Students.Student(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}

	scale, err := rc.Scales.ActiveScale(ctx)
	if err != nil {
		return nil, err
	}

	assessments, err := rc.Assessments.ApprovedAssessments(ctx, studentID, yearID, term)
	if err != nil {
		return nil, err
	}

	school, err := rc.School.ActiveSchool(ctx)
	if err != nil {
		return nil, err
	}

	termInfo, err := rc.Terms.Term(ctx, yearID, term)
	if err != nil {
		return nil, err
	}

	comments, err := rc.Comments.Comments(ctx, studentID, yearID, term)
	if err != nil {
		return nil, err
	}

	// ===== Aggregating =====
	// Urutan fetch dipertahankan; siswa tanpa assessment approved → rows kosong
	rows := make([]dto.SubjectReportRow, 0, len(assessments))
	for _, a := range assessments {
		rows = append(rows, CompileRow(a, scale, rc.Agg))
	}

	// ===== Summarizing =====
	summary := rc.summarize(rows, scale)
	summary.ClassTeacherComment = comments[model.CommentTypeClassTeacher]
	summary.HeadTeacherComment = comments[model.CommentTypeHeadTeacher]

	payload := &dto.ReportPayload{
		Subjects:    rows,
		Summary:     summary,
		Scale:       scaleLite(scale),
		GeneratedAt: time.Now(),
	}

	// Metadata passthrough (read-only dari kolaborator)
	payload.Student = dto.StudentMeta{
		StudentID:   student.StudentID,
		FullName:    student.StudentFullName,
		Gender:      student.StudentGender,
		DateOfBirth: student.StudentDateOfBirth,
		AdmissionNo: student.StudentAdmissionNo,
		Section:     student.StudentSection,
		House:       student.StudentHouse,
	}
	if school != nil {
		payload.School = dto.SchoolMeta{
			Name:       school.SchoolSettingName,
			Motto:      school.SchoolSettingMotto,
			Phone:      school.SchoolSettingPhone,
			Email:      school.SchoolSettingEmail,
			Address:    school.SchoolSettingAddress,
			LogoURL:    school.SchoolSettingLogoURL,
			FooterText: school.SchoolSettingFooterText,
		}
	}
	payload.Term = dto.TermMeta{
		AcademicYearID: yearID,
		YearLabel:      termInfo.YearLabel,
		Term:           term,
	}
	if t := termInfo.Term; t != nil {
		payload.Term.StartDate = &t.AcademicTermStartDate
		payload.Term.EndDate = &t.AcademicTermEndDate
		payload.Term.NextTermStart = t.AcademicTermNextTermStart
		if t.AcademicTermFeeNote != nil {
			payload.Term.FeeNote = *t.AcademicTermFeeNote
		}
	}

	return payload, nil
}

func (rc *ReportCompiler) summarize(rows []dto.SubjectReportRow, scale Scale) dto.ReportSummary {
	s := dto.ReportSummary{}

	// overall_average: mean dari total yang ADA saja.
	// 0 + graded_subject_count=0 artinya "tidak ada data", bukan "nilai nol".
	sum := 0.0
	for _, r := range rows {
		if r.Total != nil {
			sum += *r.Total
			s.GradedSubjectCount++
		}
	}
	if s.GradedSubjectCount > 0 {
		s.OverallAverage = Round1(sum / float64(s.GradedSubjectCount))
	}

	if b, ok := scale.Resolve(s.OverallAverage); ok {
		s.OverallGrade = b.GradeBoundaryGrade
		s.OverallAchievement = b.GradeBoundaryRemark
	} else {
		s.OverallGrade = SentinelOverallGrade
		s.OverallAchievement = SentinelOverallAchievement
	}

	// overall_identifier: mean identifier tiap row (default 2 bila kosong),
	// dibulatkan half-away-from-zero
	if len(rows) > 0 {
		idSum := 0
		for _, r := range rows {
			if r.Identifier != nil {
				idSum += *r.Identifier
			} else {
				idSum += DefaultIdentifier
			}
		}
		s.OverallIdentifier = RoundHalfAway(float64(idSum) / float64(len(rows)))
	}

	return s
}

func scaleLite(sc Scale) []dto.GradeBoundaryLite {
	out := make([]dto.GradeBoundaryLite, 0, len(sc.Boundaries))
	for _, b := range sc.Boundaries {
		out = append(out, dto.GradeBoundaryLite{
			Grade:    b.GradeBoundaryGrade,
			MinScore: b.GradeBoundaryMinScore,
			MaxScore: b.GradeBoundaryMaxScore,
			Points:   b.GradeBoundaryPoints,
			Remark:   b.GradeBoundaryRemark,
		})
	}
	return out
}
