// file: internals/features/school/academics/grading/service/report_persistence_test.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"schoolku_backend/internals/features/school/academics/grading/dto"
	"schoolku_backend/internals/features/school/academics/grading/model"
)

/* ============================================
   Fake writer (in-memory)
============================================ */

type fakeReportWriter struct {
	upsertErrs []error // error utk pemanggilan upsert ke-N (nil = sukses)
	auditErr   error

	upsertCalls int
	lastRow     *model.GeneratedReportModel
	lastAudit   *model.ReportAuditLogModel
}

func (f *fakeReportWriter) UpsertReport(_ context.Context, row *model.GeneratedReportModel) error {
	f.upsertCalls++
	if f.upsertCalls <= len(f.upsertErrs) {
		if err := f.upsertErrs[f.upsertCalls-1]; err != nil {
			return err
		}
	}
	saved := *row
	if saved.GeneratedReportID == uuid.Nil {
		saved.GeneratedReportID = uuid.New()
	}
	f.lastRow = &saved
	return nil
}

func (f *fakeReportWriter) FindReportByKey(_ context.Context, _, _ uuid.UUID, _ string) (*model.GeneratedReportModel, error) {
	if f.lastRow == nil {
		return nil, errors.New("row tidak ada")
	}
	return f.lastRow, nil
}

func (f *fakeReportWriter) AppendAudit(_ context.Context, entry *model.ReportAuditLogModel) error {
	if f.auditErr != nil {
		return f.auditErr
	}
	f.lastAudit = entry
	return nil
}

func testPayload() *dto.ReportPayload {
	total := 79.0
	return &dto.ReportPayload{
		Student: dto.StudentMeta{StudentID: uuid.New(), FullName: "Budi Santoso"},
		Term:    dto.TermMeta{AcademicYearID: uuid.New(), Term: "term_1"},
		Subjects: []dto.SubjectReportRow{
			{SubjectCode: "MTK", SubjectName: "Matematika", Total: &total, Grade: "B"},
		},
		Summary: dto.ReportSummary{
			OverallAverage:     79.0,
			GradedSubjectCount: 1,
			OverallGrade:       "B",
			OverallIdentifier:  2,
			OverallAchievement: "Very Good",
		},
		GeneratedAt: time.Now(),
	}
}

/* ============================================
   Tests
============================================ */

func TestGenerateVerificationCodeShape(t *testing.T) {
	p := &ReportPersistence{}
	sid := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")

	code := p.GenerateVerificationCode(sid)

	parts := strings.Split(code, "-")
	if len(parts) != 3 {
		t.Fatalf("code = %q, want 3 segmen", code)
	}
	if parts[0] != "RPT" {
		t.Fatalf("prefix = %q, want RPT", parts[0])
	}
	// segmen kedua stabil dari student_id
	if parts[1] != "A1B2C3D4" {
		t.Fatalf("segmen student = %q, want A1B2C3D4", parts[1])
	}
	if code != strings.ToUpper(code) {
		t.Fatalf("code harus uppercase: %q", code)
	}
}

func TestGenerateVerificationCodeFreshPerCall(t *testing.T) {
	p := &ReportPersistence{}
	sid := uuid.New()

	a := p.GenerateVerificationCode(sid)
	time.Sleep(2 * time.Millisecond) // timestamp ms harus bergeser
	b := p.GenerateVerificationCode(sid)

	if a == b {
		t.Fatalf("dua pemanggilan menghasilkan kode sama: %q", a)
	}
	// segmen student tetap sama antar pemanggilan
	if strings.Split(a, "-")[1] != strings.Split(b, "-")[1] {
		t.Fatalf("segmen student berubah: %q vs %q", a, b)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pgx 23505", &pgconn.PgError{Code: "23505"}, true},
		{"pgx kode lain", &pgconn.PgError{Code: "23503"}, false},
		{"lib/pq 23505", &pq.Error{Code: "23505"}, true},
		{"lib/pq kode lain", &pq.Error{Code: "23P01"}, false},
		{"error biasa", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Fatalf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSaveValidatesInput(t *testing.T) {
	p := &ReportPersistence{Writer: &fakeReportWriter{}}
	ctx := context.Background()

	_, err := p.Save(ctx, nil, uuid.New())
	fe := &fiber.Error{}
	if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("payload nil: err = %v, want fiber 400", err)
	}

	_, err = p.Save(ctx, testPayload(), uuid.Nil)
	if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("actor nil: err = %v, want fiber 400", err)
	}
}

func TestSaveMapsPayloadToRow(t *testing.T) {
	w := &fakeReportWriter{}
	p := &ReportPersistence{Writer: w}
	payload := testPayload()
	actor := uuid.New()

	res, err := p.Save(context.Background(), payload, actor)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	row := res.Report
	if row.GeneratedReportStudentID != payload.Student.StudentID {
		t.Fatalf("StudentID = %v, want %v", row.GeneratedReportStudentID, payload.Student.StudentID)
	}
	if row.GeneratedReportAcademicYearID != payload.Term.AcademicYearID {
		t.Fatalf("AcademicYearID = %v, want %v", row.GeneratedReportAcademicYearID, payload.Term.AcademicYearID)
	}
	if row.GeneratedReportTerm != "term_1" {
		t.Fatalf("Term = %q, want term_1", row.GeneratedReportTerm)
	}
	if row.GeneratedReportOverallAverage != 79.0 ||
		row.GeneratedReportOverallGrade != "B" ||
		row.GeneratedReportOverallIdentifier != 2 ||
		row.GeneratedReportOverallAchievement != "Very Good" ||
		row.GeneratedReportGradedSubjectCount != 1 {
		t.Fatalf("ringkasan tidak terpetakan: %+v", row)
	}
	if row.GeneratedReportStatus != model.ReportStatusDraft {
		t.Fatalf("Status = %q, want draft", row.GeneratedReportStatus)
	}
	if row.GeneratedReportGeneratedBy != actor {
		t.Fatalf("GeneratedBy = %v, want %v", row.GeneratedReportGeneratedBy, actor)
	}
	if !strings.HasPrefix(row.GeneratedReportVerificationCode, "RPT-") {
		t.Fatalf("VerificationCode = %q", row.GeneratedReportVerificationCode)
	}

	// snapshot JSONB harus payload utuh yang bisa dibaca balik
	var stored dto.ReportPayload
	if err := json.Unmarshal(row.GeneratedReportPayload, &stored); err != nil {
		t.Fatalf("payload snapshot bukan JSON valid: %v", err)
	}
	if len(stored.Subjects) != 1 || stored.Subjects[0].SubjectCode != "MTK" {
		t.Fatalf("snapshot subjects = %+v", stored.Subjects)
	}
	if !res.AuditLogged {
		t.Fatal("AuditLogged = false, want true")
	}
}

func TestSaveRetriesOnUniqueViolation(t *testing.T) {
	// 23505 dari pgx (driver aktif): upsert pertama kalah race, kedua harus jalan
	w := &fakeReportWriter{upsertErrs: []error{&pgconn.PgError{Code: "23505"}}}
	p := &ReportPersistence{Writer: w}

	res, err := p.Save(context.Background(), testPayload(), uuid.New())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if w.upsertCalls != 2 {
		t.Fatalf("upsertCalls = %d, want 2", w.upsertCalls)
	}
	if res.Report == nil {
		t.Fatal("Report nil setelah retry")
	}
}

func TestSaveRetriesOnLibPQUniqueViolation(t *testing.T) {
	w := &fakeReportWriter{upsertErrs: []error{&pq.Error{Code: "23505"}}}
	p := &ReportPersistence{Writer: w}

	if _, err := p.Save(context.Background(), testPayload(), uuid.New()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if w.upsertCalls != 2 {
		t.Fatalf("upsertCalls = %d, want 2", w.upsertCalls)
	}
}

func TestSaveDoesNotRetryOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	w := &fakeReportWriter{upsertErrs: []error{boom}}
	p := &ReportPersistence{Writer: w}

	_, err := p.Save(context.Background(), testPayload(), uuid.New())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if w.upsertCalls != 1 {
		t.Fatalf("upsertCalls = %d, want 1 (tanpa retry)", w.upsertCalls)
	}
}

func TestSaveResavesSameKeySingleRow(t *testing.T) {
	// Compile ulang key yang sama: tetap satu row (overwrite), dua audit entry
	w := &fakeReportWriter{}
	p := &ReportPersistence{Writer: w}
	payload := testPayload()
	actor := uuid.New()

	first, err := p.Save(context.Background(), payload, actor)
	if err != nil {
		t.Fatalf("Save pertama: %v", err)
	}
	firstAudit := w.lastAudit

	payload.Summary.OverallAverage = 85.0
	second, err := p.Save(context.Background(), payload, actor)
	if err != nil {
		t.Fatalf("Save kedua: %v", err)
	}

	if second.Report.GeneratedReportStudentID != first.Report.GeneratedReportStudentID ||
		second.Report.GeneratedReportTerm != first.Report.GeneratedReportTerm {
		t.Fatalf("key berubah antar save: %+v vs %+v", first.Report, second.Report)
	}
	if second.Report.GeneratedReportOverallAverage != 85.0 {
		t.Fatalf("OverallAverage = %v, want overwrite 85.0", second.Report.GeneratedReportOverallAverage)
	}
	// kode verifikasi baru tiap compile
	if second.Report.GeneratedReportVerificationCode == first.Report.GeneratedReportVerificationCode {
		t.Fatal("verification code tidak di-regenerate")
	}
	if firstAudit == nil || w.lastAudit == nil || firstAudit == w.lastAudit {
		t.Fatal("tiap save harus menghasilkan audit entry sendiri")
	}
}

func TestSaveAuditDetails(t *testing.T) {
	w := &fakeReportWriter{}
	p := &ReportPersistence{Writer: w}
	payload := testPayload()
	actor := uuid.New()

	res, err := p.Save(context.Background(), payload, actor)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	entry := w.lastAudit
	if entry == nil {
		t.Fatal("audit entry tidak ditulis")
	}
	if entry.ReportAuditLogAction != model.AuditActionGenerateReport {
		t.Fatalf("Action = %q, want %q", entry.ReportAuditLogAction, model.AuditActionGenerateReport)
	}
	if entry.ReportAuditLogActorID != actor {
		t.Fatalf("ActorID = %v, want %v", entry.ReportAuditLogActorID, actor)
	}
	if entry.ReportAuditLogTargetType != "generated_report" ||
		entry.ReportAuditLogTargetID != res.Report.GeneratedReportID {
		t.Fatalf("target salah: %+v", entry)
	}

	var details map[string]any
	if err := json.Unmarshal(entry.ReportAuditLogDetails, &details); err != nil {
		t.Fatalf("details bukan JSON valid: %v", err)
	}
	if details["term"] != "term_1" {
		t.Fatalf("details.term = %v", details["term"])
	}
	if details["verification_code"] != res.Report.GeneratedReportVerificationCode {
		t.Fatalf("details.verification_code = %v", details["verification_code"])
	}
	if details["overall_average"] != 79.0 {
		t.Fatalf("details.overall_average = %v", details["overall_average"])
	}
}

func TestSaveAuditFailureNonFatal(t *testing.T) {
	w := &fakeReportWriter{auditErr: errors.New("audit table down")}
	p := &ReportPersistence{Writer: w}

	res, err := p.Save(context.Background(), testPayload(), uuid.New())
	if err != nil {
		t.Fatalf("Save harus sukses walau audit gagal: %v", err)
	}
	if res.AuditLogged {
		t.Fatal("AuditLogged = true, want false")
	}
	if res.Report == nil {
		t.Fatal("Report nil")
	}
}
