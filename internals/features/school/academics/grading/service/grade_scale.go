// file: internals/features/school/academics/grading/service/grade_scale.go
package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/grading/model"
)

// Scale adalah snapshot read-only dari grade_boundaries aktif,
// urut sesuai grade_boundary_position. Di-inject ke compiler saat
// compile (bukan singleton) supaya resolver tetap pure & mudah dites.
type Scale struct {
	Boundaries []model.GradeBoundaryModel
}

// LoadActiveScale ambil snapshot skala aktif dari DB (urutan tersimpan).
func LoadActiveScale(ctx context.Context, db *gorm.DB) (Scale, error) {
	var rows []model.GradeBoundaryModel
	if err := db.WithContext(ctx).
		Where("grade_boundary_is_active = ?", true).
		Order("grade_boundary_position ASC, grade_boundary_min_score DESC").
		Find(&rows).Error; err != nil {
		return Scale{}, err
	}
	return Scale{Boundaries: rows}, nil
}

// Resolve scan boundary aktif dan kembalikan match pertama yang rentangnya
// memuat skor (inklusif dua sisi). Overlap diselesaikan oleh urutan tersimpan
// (kebijakan pemilik konfigurasi), bukan oleh resolver.
func (s Scale) Resolve(score float64) (*model.GradeBoundaryModel, bool) {
	for i := range s.Boundaries {
		if s.Boundaries[i].Contains(score) {
			return &s.Boundaries[i], true
		}
	}
	return nil, false
}

// ScaleIssue satu temuan konfigurasi (gap atau overlap) di rentang [0,100]
type ScaleIssue struct {
	Kind string  `json:"kind"` // "gap" | "overlap"
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Check memeriksa skala terhadap invariant [0,100]: tanpa gap, tanpa overlap.
// Temuan dilaporkan ke admin sbg configuration error; compile TIDAK diblokir
// (resolver cukup mengembalikan not-found utk skor di area bermasalah).
func (s Scale) Check() []ScaleIssue {
	if len(s.Boundaries) == 0 {
		return []ScaleIssue{{Kind: "gap", From: 0, To: 100}}
	}

	sorted := make([]model.GradeBoundaryModel, len(s.Boundaries))
	copy(sorted, s.Boundaries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].GradeBoundaryMinScore < sorted[j].GradeBoundaryMinScore
	})

	var issues []ScaleIssue

	// Gap sebelum boundary pertama
	if sorted[0].GradeBoundaryMinScore > 0 {
		issues = append(issues, ScaleIssue{Kind: "gap", From: 0, To: sorted[0].GradeBoundaryMinScore})
	}

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		switch {
		case cur.GradeBoundaryMinScore <= prev.GradeBoundaryMaxScore:
			issues = append(issues, ScaleIssue{
				Kind: "overlap",
				From: cur.GradeBoundaryMinScore,
				To:   prev.GradeBoundaryMaxScore,
			})
		case cur.GradeBoundaryMinScore-prev.GradeBoundaryMaxScore > 1:
			// Batas integer bersebelahan (mis. 49 → 50) bukan gap;
			// jarak > 1 menyisakan skor yang tak tercakup.
			issues = append(issues, ScaleIssue{
				Kind: "gap",
				From: prev.GradeBoundaryMaxScore,
				To:   cur.GradeBoundaryMinScore,
			})
		}
	}

	// Gap setelah boundary terakhir
	last := sorted[len(sorted)-1]
	if last.GradeBoundaryMaxScore < 100 {
		issues = append(issues, ScaleIssue{Kind: "gap", From: last.GradeBoundaryMaxScore, To: 100})
	}

	return issues
}
