// file: internals/features/school/academics/grading/service/grade_scale_test.go
package service

import (
	"testing"

	"schoolku_backend/internals/features/school/academics/grading/model"
)

func boundary(grade string, min, max float64, pos int) model.GradeBoundaryModel {
	return model.GradeBoundaryModel{
		GradeBoundaryGrade:    grade,
		GradeBoundaryMinScore: min,
		GradeBoundaryMaxScore: max,
		GradeBoundaryPosition: pos,
		GradeBoundaryIsActive: true,
	}
}

// skala standar: A 80-100, B 70-79, C 60-69, D 50-59, F 0-49
func standardScale() Scale {
	return Scale{Boundaries: []model.GradeBoundaryModel{
		boundary("A", 80, 100, 1),
		boundary("B", 70, 79, 2),
		boundary("C", 60, 69, 3),
		boundary("D", 50, 59, 4),
		boundary("F", 0, 49, 5),
	}}
}

func TestScaleResolve(t *testing.T) {
	sc := standardScale()

	tests := []struct {
		name  string
		score float64
		grade string
		ok    bool
	}{
		{"batas bawah inklusif", 80, "A", true},
		{"batas atas inklusif", 79, "B", true},
		{"tengah rentang", 65.5, "C", true},
		{"nol", 0, "F", true},
		{"maksimum", 100, "A", true},
		{"di atas skala", 101, "", false},
		{"celah antar batas integer", 79.5, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := sc.Resolve(tt.score)
			if ok != tt.ok {
				t.Fatalf("Resolve(%v) ok = %v, want %v", tt.score, ok, tt.ok)
			}
			if ok && b.GradeBoundaryGrade != tt.grade {
				t.Fatalf("Resolve(%v) = %q, want %q", tt.score, b.GradeBoundaryGrade, tt.grade)
			}
		})
	}
}

func TestScaleResolveOverlapFirstMatch(t *testing.T) {
	// Dua boundary memuat 75; pemenang adalah yang lebih dulu di urutan tersimpan
	sc := Scale{Boundaries: []model.GradeBoundaryModel{
		boundary("B+", 70, 79, 1),
		boundary("B", 60, 79, 2),
	}}
	b, ok := sc.Resolve(75)
	if !ok || b.GradeBoundaryGrade != "B+" {
		t.Fatalf("Resolve(75) = %v (ok=%v), want B+", b, ok)
	}
}

func TestScaleCheck(t *testing.T) {
	t.Run("skala rapat tanpa temuan", func(t *testing.T) {
		if issues := standardScale().Check(); len(issues) != 0 {
			t.Fatalf("Check() = %v, want kosong", issues)
		}
	})

	t.Run("skala kosong satu gap penuh", func(t *testing.T) {
		issues := Scale{}.Check()
		if len(issues) != 1 || issues[0].Kind != "gap" || issues[0].From != 0 || issues[0].To != 100 {
			t.Fatalf("Check() = %v, want gap 0-100", issues)
		}
	})

	t.Run("gap di tengah", func(t *testing.T) {
		sc := Scale{Boundaries: []model.GradeBoundaryModel{
			boundary("A", 80, 100, 1),
			boundary("C", 0, 60, 2), // 60→80 bolong
		}}
		issues := sc.Check()
		if len(issues) != 1 || issues[0].Kind != "gap" || issues[0].From != 60 || issues[0].To != 80 {
			t.Fatalf("Check() = %v, want gap 60-80", issues)
		}
	})

	t.Run("overlap terdeteksi", func(t *testing.T) {
		sc := Scale{Boundaries: []model.GradeBoundaryModel{
			boundary("A", 75, 100, 1),
			boundary("B", 0, 80, 2),
		}}
		issues := sc.Check()
		if len(issues) != 1 || issues[0].Kind != "overlap" {
			t.Fatalf("Check() = %v, want satu overlap", issues)
		}
	})

	t.Run("gap di ujung bawah dan atas", func(t *testing.T) {
		sc := Scale{Boundaries: []model.GradeBoundaryModel{
			boundary("C", 10, 90, 1),
		}}
		issues := sc.Check()
		if len(issues) != 2 {
			t.Fatalf("Check() = %v, want 2 temuan", issues)
		}
	})
}

func TestGradeBoundaryContains(t *testing.T) {
	b := boundary("B", 70, 79, 1)
	for _, tt := range []struct {
		score float64
		want  bool
	}{
		{70, true}, {79, true}, {74.5, true}, {69.99, false}, {79.01, false},
	} {
		if got := b.Contains(tt.score); got != tt.want {
			t.Fatalf("Contains(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
