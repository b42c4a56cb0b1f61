// file: internals/features/school/academics/grading/service/score_aggregator_test.go
package service

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestAverageCA(t *testing.T) {
	g := NewAggregator()

	tests := []struct {
		name       string
		a1, a2, a3 *float64
		want       *float64
	}{
		{"semua kosong", nil, nil, nil, nil},
		{"satu skor", fp(60), nil, nil, fp(60)},
		{"dua skor", fp(60), nil, fp(90), fp(75)},
		{"tiga skor", fp(60), fp(70), fp(80), fp(70)},
		{"nol eksplisit ikut dihitung", fp(0), fp(90), nil, fp(45)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.AverageCA(tt.a1, tt.a2, tt.a3)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("AverageCA = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("AverageCA = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestCAComponent(t *testing.T) {
	t.Run("skala default 100", func(t *testing.T) {
		g := NewAggregator()
		got := g.CAComponent(fp(75))
		if got == nil || *got != 15 {
			t.Fatalf("CAComponent(75) = %v, want 15", got)
		}
	})

	t.Run("skala 0-3 penuh jadi 20 poin", func(t *testing.T) {
		g := Aggregator{CAFullScale: 3}
		got := g.CAComponent(fp(3))
		if got == nil || *got != 20 {
			t.Fatalf("CAComponent(3) = %v, want 20", got)
		}
	})

	t.Run("nil passthrough", func(t *testing.T) {
		g := NewAggregator()
		if got := g.CAComponent(nil); got != nil {
			t.Fatalf("CAComponent(nil) = %v, want nil", got)
		}
	})

	t.Run("tidak pernah melebihi bobot utk input valid", func(t *testing.T) {
		g := NewAggregator()
		for v := 0.0; v <= 100; v += 0.5 {
			got := g.CAComponent(fp(v))
			if *got > CAWeightPoints {
				t.Fatalf("CAComponent(%v) = %v melebihi %v", v, *got, CAWeightPoints)
			}
		}
	})
}

func TestExamComponent(t *testing.T) {
	g := NewAggregator()

	if got := g.ExamComponent(fp(80)); got == nil || *got != 64 {
		t.Fatalf("ExamComponent(80) = %v, want 64", got)
	}
	if got := g.ExamComponent(nil); got != nil {
		t.Fatalf("ExamComponent(nil) = %v, want nil", got)
	}
}

func TestTotal(t *testing.T) {
	g := NewAggregator()

	tests := []struct {
		name           string
		ca, exam, flat *float64
		want           *float64
	}{
		{"komponen lengkap", fp(15), fp(64), nil, fp(79)},
		{"komponen lengkap abaikan marks", fp(15), fp(64), fp(50), fp(79)},
		{"ca kosong fallback marks", nil, fp(64), fp(72), fp(72)},
		{"exam kosong fallback marks", fp(15), nil, fp(72), fp(72)},
		{"semua kosong", nil, nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Total(tt.ca, tt.exam, tt.flat)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Total = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("Total = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{79.04, 79.0},
		{79.05, 79.1},
		{66.666666, 66.7},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundHalfAway(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{1.4, 1},
		{1.5, 2},
		{2.5, 3},
		{2.49, 2},
		{-1.5, -2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundHalfAway(tt.in); got != tt.want {
			t.Fatalf("RoundHalfAway(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
