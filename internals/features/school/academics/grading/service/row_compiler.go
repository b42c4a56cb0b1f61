// file: internals/features/school/academics/grading/service/row_compiler.go
package service

import (
	"schoolku_backend/internals/features/school/academics/grading/dto"
	"schoolku_backend/internals/features/school/academics/grading/model"
)

// CompileRow satu mapel: aggregator → resolve grade → row siap-render.
// Skala rusak TIDAK memblokir: grade/remark kosong bila skor tak tercakup.
func CompileRow(a model.SubjectAssessmentModel, sc Scale, g Aggregator) dto.SubjectReportRow {
	avg := g.AverageCA(a.SubjectAssessmentA1, a.SubjectAssessmentA2, a.SubjectAssessmentA3)
	caComp := g.CAComponent(avg)
	examComp := g.ExamComponent(a.SubjectAssessmentExam)
	total := g.Total(caComp, examComp, a.SubjectAssessmentMarks)

	row := dto.SubjectReportRow{
		SubjectCode: a.SubjectAssessmentSubjectCode,
		SubjectName: a.SubjectAssessmentSubjectName,

		A1: a.SubjectAssessmentA1,
		A2: a.SubjectAssessmentA2,
		A3: a.SubjectAssessmentA3,

		// Pembulatan hanya di permukaan row
		AvgCA:         Round1p(avg),
		CAComponent:   Round1p(caComp),
		ExamComponent: Round1p(examComp),
		Total:         Round1p(total),

		// Passthrough apa adanya, bukan turunan skala
		Identifier: a.SubjectAssessmentIdentifier,
	}

	if a.SubjectAssessmentRemark != nil {
		row.TeacherRemark = *a.SubjectAssessmentRemark
	}
	if a.SubjectAssessmentTeacherInitials != nil {
		row.TeacherInitials = *a.SubjectAssessmentTeacherInitials
	}

	if row.Total != nil {
		if b, ok := sc.Resolve(*row.Total); ok {
			row.Grade = b.GradeBoundaryGrade
			row.Remark = b.GradeBoundaryRemark
		}
	}
	return row
}
