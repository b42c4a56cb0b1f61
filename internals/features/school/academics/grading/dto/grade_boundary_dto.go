// file: internals/features/school/academics/grading/dto/grade_boundary_dto.go
package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/academics/grading/model"
)

// =======================
// Request DTO
// =======================

type GradeBoundaryCreateDTO struct {
	GradeBoundaryGrade    string  `json:"grade_boundary_grade"     validate:"required,min=1,max=8"`
	GradeBoundaryMinScore float64 `json:"grade_boundary_min_score" validate:"min=0,max=100"`
	// gtefield agar sejalan dg DB CHECK (max >= min)
	GradeBoundaryMaxScore float64 `json:"grade_boundary_max_score" validate:"min=0,max=100,gtefield=GradeBoundaryMinScore"`
	GradeBoundaryPoints   float64 `json:"grade_boundary_points"    validate:"min=0"`
	GradeBoundaryRemark   string  `json:"grade_boundary_remark"    validate:"max=255"`

	GradeBoundaryDivisionWeight float64 `json:"grade_boundary_division_weight" validate:"min=0"`
	GradeBoundaryPosition       int     `json:"grade_boundary_position"        validate:"min=0"`

	// pointer: bedakan "tidak dikirim" vs "false"
	GradeBoundaryIsActive *bool `json:"grade_boundary_is_active,omitempty"`
}

type GradeBoundaryUpdateDTO struct {
	GradeBoundaryGrade    *string  `json:"grade_boundary_grade,omitempty"     validate:"omitempty,min=1,max=8"`
	GradeBoundaryMinScore *float64 `json:"grade_boundary_min_score,omitempty" validate:"omitempty,min=0,max=100"`
	GradeBoundaryMaxScore *float64 `json:"grade_boundary_max_score,omitempty" validate:"omitempty,min=0,max=100"`
	GradeBoundaryPoints   *float64 `json:"grade_boundary_points,omitempty"    validate:"omitempty,min=0"`
	GradeBoundaryRemark   *string  `json:"grade_boundary_remark,omitempty"    validate:"omitempty,max=255"`

	GradeBoundaryDivisionWeight *float64 `json:"grade_boundary_division_weight,omitempty" validate:"omitempty,min=0"`
	GradeBoundaryPosition       *int     `json:"grade_boundary_position,omitempty"        validate:"omitempty,min=0"`
	GradeBoundaryIsActive       *bool    `json:"grade_boundary_is_active,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *GradeBoundaryCreateDTO) Normalize() {
	p.GradeBoundaryGrade = strings.TrimSpace(p.GradeBoundaryGrade)
	p.GradeBoundaryRemark = strings.TrimSpace(p.GradeBoundaryRemark)
}

func (p *GradeBoundaryCreateDTO) ToModel() model.GradeBoundaryModel {
	isActive := true
	if p.GradeBoundaryIsActive != nil {
		isActive = *p.GradeBoundaryIsActive // hormati input eksplisit
	}
	return model.GradeBoundaryModel{
		GradeBoundaryGrade:          p.GradeBoundaryGrade,
		GradeBoundaryMinScore:       p.GradeBoundaryMinScore,
		GradeBoundaryMaxScore:       p.GradeBoundaryMaxScore,
		GradeBoundaryPoints:         p.GradeBoundaryPoints,
		GradeBoundaryRemark:         p.GradeBoundaryRemark,
		GradeBoundaryDivisionWeight: p.GradeBoundaryDivisionWeight,
		GradeBoundaryPosition:       p.GradeBoundaryPosition,
		GradeBoundaryIsActive:       isActive,
	}
}

func (u *GradeBoundaryUpdateDTO) ApplyUpdates(ent *model.GradeBoundaryModel) {
	if u.GradeBoundaryGrade != nil {
		ent.GradeBoundaryGrade = strings.TrimSpace(*u.GradeBoundaryGrade)
	}
	if u.GradeBoundaryMinScore != nil {
		ent.GradeBoundaryMinScore = *u.GradeBoundaryMinScore
	}
	if u.GradeBoundaryMaxScore != nil {
		ent.GradeBoundaryMaxScore = *u.GradeBoundaryMaxScore
	}
	if u.GradeBoundaryPoints != nil {
		ent.GradeBoundaryPoints = *u.GradeBoundaryPoints
	}
	if u.GradeBoundaryRemark != nil {
		ent.GradeBoundaryRemark = strings.TrimSpace(*u.GradeBoundaryRemark)
	}
	if u.GradeBoundaryDivisionWeight != nil {
		ent.GradeBoundaryDivisionWeight = *u.GradeBoundaryDivisionWeight
	}
	if u.GradeBoundaryPosition != nil {
		ent.GradeBoundaryPosition = *u.GradeBoundaryPosition
	}
	if u.GradeBoundaryIsActive != nil {
		ent.GradeBoundaryIsActive = *u.GradeBoundaryIsActive
	}
}
