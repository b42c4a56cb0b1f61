// file: internals/features/school/academics/grading/service/collaborators.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	termModel "schoolku_backend/internals/features/school/academics/academic_terms/model"
	"schoolku_backend/internals/features/school/academics/grading/model"
	settingModel "schoolku_backend/internals/features/school/settings/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
)

/* ============================================
   Reader interfaces (kolaborator eksternal core rapor).
   Core hanya BACA dari sini; CRUD-nya milik modul lain.
============================================ */

type AssessmentReader interface {
	// Hanya submission approved; urutan fetch dipertahankan (tidak di-sort ulang)
	ApprovedAssessments(ctx context.Context, studentID, yearID uuid.UUID, term string) ([]model.SubjectAssessmentModel, error)
}

type StudentReader interface {
	Student(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error)
}

type SchoolReader interface {
	// Single active record; nil kalau belum dikonfigurasi
	ActiveSchool(ctx context.Context) (*settingModel.SchoolSettingModel, error)
}

// TermInfo gabungan row term + label tahun ajaran
type TermInfo struct {
	Term      *termModel.AcademicTermModel
	YearLabel string
}

type TermReader interface {
	Term(ctx context.Context, yearID uuid.UUID, name string) (TermInfo, error)
}

type CommentReader interface {
	// map[comment_type]body utk (student, year, term)
	Comments(ctx context.Context, studentID, yearID uuid.UUID, term string) (map[string]string, error)
}

type ScaleReader interface {
	ActiveScale(ctx context.Context) (Scale, error)
}

/* ============================================
   GORM implementations
============================================ */

type gormAssessmentReader struct{ db *gorm.DB }

func (r gormAssessmentReader) ApprovedAssessments(ctx context.Context, studentID, yearID uuid.UUID, term string) ([]model.SubjectAssessmentModel, error) {
	var rows []model.SubjectAssessmentModel
	err := r.db.WithContext(ctx).
		Where("subject_assessment_student_id = ? AND subject_assessment_academic_year_id = ? AND subject_assessment_term = ? AND subject_assessment_status = ?",
			studentID, yearID, term, model.AssessmentStatusApproved).
		Order("subject_assessment_created_at ASC").
		Find(&rows).Error
	return rows, err
}

type gormStudentReader struct{ db *gorm.DB }

func (r gormStudentReader) Student(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error) {
	var ent studentModel.StudentModel
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		First(&ent).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

type gormSchoolReader struct{ db *gorm.DB }

func (r gormSchoolReader) ActiveSchool(ctx context.Context) (*settingModel.SchoolSettingModel, error) {
	var ent settingModel.SchoolSettingModel
	if err := r.db.WithContext(ctx).
		Where("school_setting_is_active = ?", true).
		Order("school_setting_updated_at DESC").
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // belum dikonfigurasi → header rapor kosong, bukan error
		}
		return nil, err
	}
	return &ent, nil
}

type gormTermReader struct{ db *gorm.DB }

func (r gormTermReader) Term(ctx context.Context, yearID uuid.UUID, name string) (TermInfo, error) {
	info := TermInfo{}

	var term termModel.AcademicTermModel
	err := r.db.WithContext(ctx).
		Where("academic_term_academic_year_id = ? AND academic_term_name = ?", yearID, name).
		First(&term).Error
	switch {
	case err == nil:
		info.Term = &term
	case errors.Is(err, gorm.ErrRecordNotFound):
		// term belum dikonfigurasi → metadata kosong, compile jalan terus
	default:
		return info, err
	}

	var year termModel.AcademicYearModel
	if err := r.db.WithContext(ctx).
		Where("academic_year_id = ?", yearID).
		First(&year).Error; err == nil {
		info.YearLabel = year.AcademicYearLabel
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return info, err
	}

	return info, nil
}

type gormCommentReader struct{ db *gorm.DB }

func (r gormCommentReader) Comments(ctx context.Context, studentID, yearID uuid.UUID, term string) (map[string]string, error) {
	var rows []model.ReportCommentModel
	if err := r.db.WithContext(ctx).
		Where("report_comment_student_id = ? AND report_comment_academic_year_id = ? AND report_comment_term = ?",
			studentID, yearID, term).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ReportCommentType] = row.ReportCommentBody
	}
	return out, nil
}

type gormScaleReader struct{ db *gorm.DB }

func (r gormScaleReader) ActiveScale(ctx context.Context) (Scale, error) {
	return LoadActiveScale(ctx, r.db)
}
