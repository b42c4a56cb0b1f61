// file: internals/features/school/academics/grading/service/report_compiler_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/grading/model"
	settingModel "schoolku_backend/internals/features/school/settings/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
)

/* ============================================
   Fake readers (in-memory)
============================================ */

type fakeAssessments struct{ rows []model.SubjectAssessmentModel }

func (f fakeAssessments) ApprovedAssessments(_ context.Context, _, _ uuid.UUID, _ string) ([]model.SubjectAssessmentModel, error) {
	return f.rows, nil
}

type fakeStudents struct{ ent *studentModel.StudentModel }

func (f fakeStudents) Student(_ context.Context, _ uuid.UUID) (*studentModel.StudentModel, error) {
	if f.ent == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.ent, nil
}

type fakeSchool struct{ ent *settingModel.SchoolSettingModel }

func (f fakeSchool) ActiveSchool(_ context.Context) (*settingModel.SchoolSettingModel, error) {
	return f.ent, nil
}

type fakeTerms struct{ info TermInfo }

func (f fakeTerms) Term(_ context.Context, _ uuid.UUID, _ string) (TermInfo, error) {
	return f.info, nil
}

type fakeComments struct{ m map[string]string }

func (f fakeComments) Comments(_ context.Context, _, _ uuid.UUID, _ string) (map[string]string, error) {
	return f.m, nil
}

type fakeScale struct{ sc Scale }

func (f fakeScale) ActiveScale(_ context.Context) (Scale, error) { return f.sc, nil }

func testCompiler(assessments []model.SubjectAssessmentModel, sc Scale) *ReportCompiler {
	return &ReportCompiler{
		Assessments: fakeAssessments{rows: assessments},
		Students: fakeStudents{ent: &studentModel.StudentModel{
			StudentID:       uuid.New(),
			StudentFullName: "Budi Santoso",
		}},
		School:   fakeSchool{},
		Terms:    fakeTerms{info: TermInfo{YearLabel: "2025/2026"}},
		Comments: fakeComments{m: map[string]string{"class_teacher": "Pertahankan!"}},
		Scales:   fakeScale{sc: sc},
		Agg:      NewAggregator(),
	}
}

/* ============================================
   Tests
============================================ */

func TestCompileValidatesInput(t *testing.T) {
	rc := testCompiler(nil, standardScale())
	ctx := context.Background()

	tests := []struct {
		name          string
		student, year uuid.UUID
		term          string
	}{
		{"student kosong", uuid.Nil, uuid.New(), "term_1"},
		{"tahun kosong", uuid.New(), uuid.Nil, "term_1"},
		{"term kosong", uuid.New(), uuid.New(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rc.Compile(ctx, tt.student, tt.year, tt.term)
			fe := &fiber.Error{}
			if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
				t.Fatalf("err = %v, want fiber 400", err)
			}
		})
	}
}

func TestCompileStudentNotFound(t *testing.T) {
	rc := testCompiler(nil, standardScale())
	rc.Students = fakeStudents{ent: nil}

	_, err := rc.Compile(context.Background(), uuid.New(), uuid.New(), "term_1")
	fe := &fiber.Error{}
	if !errors.As(err, &fe) || fe.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want fiber 404", err)
	}
}

func TestCompileNoAssessments(t *testing.T) {
	rc := testCompiler(nil, standardScale())

	payload, err := rc.Compile(context.Background(), uuid.New(), uuid.New(), "term_1")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(payload.Subjects) != 0 {
		t.Fatalf("Subjects = %v, want kosong", payload.Subjects)
	}
	// 0 + count 0 artinya "tidak ada data", bukan nilai nol
	if payload.Summary.OverallAverage != 0 || payload.Summary.GradedSubjectCount != 0 {
		t.Fatalf("Summary = %+v, want average 0 count 0", payload.Summary)
	}
	// Skala memuat 0 → grade resolve normal (F di skala standar)
	if payload.Summary.OverallGrade != "F" {
		t.Fatalf("OverallGrade = %q, want F", payload.Summary.OverallGrade)
	}
}

func TestCompileSummary(t *testing.T) {
	// Dua mapel: 79 (B) dan 85 (A) → overall 82.0 → A
	rows := []model.SubjectAssessmentModel{
		assessment(fp(70), fp(75), fp(80), fp(80), nil), // total 79
		assessment(nil, nil, nil, nil, fp(85)),          // legacy 85
	}
	rc := testCompiler(rows, standardScale())

	payload, err := rc.Compile(context.Background(), uuid.New(), uuid.New(), "term_1")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	s := payload.Summary
	if s.GradedSubjectCount != 2 {
		t.Fatalf("GradedSubjectCount = %d, want 2", s.GradedSubjectCount)
	}
	if s.OverallAverage != 82.0 {
		t.Fatalf("OverallAverage = %v, want 82.0", s.OverallAverage)
	}
	if s.OverallGrade != "A" {
		t.Fatalf("OverallGrade = %q, want A", s.OverallGrade)
	}
	if s.ClassTeacherComment != "Pertahankan!" {
		t.Fatalf("ClassTeacherComment = %q", s.ClassTeacherComment)
	}
	if len(payload.Scale) != 5 {
		t.Fatalf("Scale legend = %d entries, want 5", len(payload.Scale))
	}
}

func TestCompileSummaryExcludesUngraded(t *testing.T) {
	// Mapel tanpa nilai tidak menurunkan rata-rata
	rows := []model.SubjectAssessmentModel{
		assessment(nil, nil, nil, nil, fp(80)),
		assessment(nil, nil, nil, nil, nil), // tanpa data
	}
	rc := testCompiler(rows, standardScale())

	payload, _ := rc.Compile(context.Background(), uuid.New(), uuid.New(), "term_1")
	if payload.Summary.GradedSubjectCount != 1 || payload.Summary.OverallAverage != 80.0 {
		t.Fatalf("Summary = %+v, want count 1 average 80", payload.Summary)
	}
	if len(payload.Subjects) != 2 {
		t.Fatalf("Subjects = %d, want 2 (row kosong tetap tampil)", len(payload.Subjects))
	}
}

func TestCompileSentinelOnScaleMiss(t *testing.T) {
	// Skala tidak memuat overall → sentinel, bukan error
	narrow := Scale{Boundaries: []model.GradeBoundaryModel{boundary("A", 90, 100, 1)}}
	rows := []model.SubjectAssessmentModel{assessment(nil, nil, nil, nil, fp(50))}
	rc := testCompiler(rows, narrow)

	payload, err := rc.Compile(context.Background(), uuid.New(), uuid.New(), "term_1")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if payload.Summary.OverallGrade != SentinelOverallGrade {
		t.Fatalf("OverallGrade = %q, want sentinel %q", payload.Summary.OverallGrade, SentinelOverallGrade)
	}
	if payload.Summary.OverallAchievement != SentinelOverallAchievement {
		t.Fatalf("OverallAchievement = %q, want sentinel %q", payload.Summary.OverallAchievement, SentinelOverallAchievement)
	}
}

func TestCompileOverallIdentifier(t *testing.T) {
	// Identifier 3 dan kosong (default 2) → mean 2.5 → half-away = 3
	withID := assessment(nil, nil, nil, nil, fp(80))
	withID.SubjectAssessmentIdentifier = ip(3)
	rows := []model.SubjectAssessmentModel{
		withID,
		assessment(nil, nil, nil, nil, fp(70)),
	}
	rc := testCompiler(rows, standardScale())

	payload, _ := rc.Compile(context.Background(), uuid.New(), uuid.New(), "term_1")
	if payload.Summary.OverallIdentifier != 3 {
		t.Fatalf("OverallIdentifier = %d, want 3", payload.Summary.OverallIdentifier)
	}
}

func TestCompilePreservesFetchOrder(t *testing.T) {
	rows := []model.SubjectAssessmentModel{
		assessment(nil, nil, nil, nil, fp(60)),
		assessment(nil, nil, nil, nil, fp(70)),
		assessment(nil, nil, nil, nil, fp(80)),
	}
	rows[0].SubjectAssessmentSubjectCode = "BIN"
	rows[1].SubjectAssessmentSubjectCode = "MTK"
	rows[2].SubjectAssessmentSubjectCode = "IPA"
	rc := testCompiler(rows, standardScale())

	payload, _ := rc.Compile(context.Background(), uuid.New(), uuid.New(), "term_1")
	want := []string{"BIN", "MTK", "IPA"}
	for i, w := range want {
		if payload.Subjects[i].SubjectCode != w {
			t.Fatalf("Subjects[%d] = %q, want %q", i, payload.Subjects[i].SubjectCode, w)
		}
	}
}

func TestCompileMetadataPassthrough(t *testing.T) {
	rc := testCompiler(nil, standardScale())
	rc.School = fakeSchool{ent: &settingModel.SchoolSettingModel{
		SchoolSettingName:  "SMA Harapan Bangsa",
		SchoolSettingMotto: "Belajar Sepanjang Hayat",
	}}

	payload, _ := rc.Compile(context.Background(), uuid.New(), uuid.New(), "term_1")
	if payload.School.Name != "SMA Harapan Bangsa" {
		t.Fatalf("School.Name = %q", payload.School.Name)
	}
	if payload.Student.FullName != "Budi Santoso" {
		t.Fatalf("Student.FullName = %q", payload.Student.FullName)
	}
	if payload.Term.YearLabel != "2025/2026" || payload.Term.Term != "term_1" {
		t.Fatalf("Term = %+v", payload.Term)
	}
	if payload.GeneratedAt.IsZero() {
		t.Fatal("GeneratedAt kosong")
	}
}
