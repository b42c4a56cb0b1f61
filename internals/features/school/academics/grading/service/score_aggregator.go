// file: internals/features/school/academics/grading/service/score_aggregator.go
package service

import "math"

// Bobot komponen nilai: CA menyumbang 20 poin, exam 80 poin dari total 100.
const (
	CAWeightPoints     = 20.0
	ExamWeightFraction = 0.8

	// Skala penuh tiap skor CA (a1/a2/a3). Default 100 (persentase).
	// Sekolah yang menilai CA pada skala lain (mis. 0–3) set nilai ini
	// lewat Aggregator.CAFullScale.
	DefaultCAFullScale = 100.0
)

// Aggregator menggabungkan skor mentah per mapel jadi komponen ternormalisasi.
// Pure: tidak menyentuh DB. Semua input pointer — nil berarti "tidak diisi",
// dan nilai absen TIDAK di-nol-kan (dikeluarkan dari pembilang & penyebut).
type Aggregator struct {
	CAFullScale float64
}

func NewAggregator() Aggregator {
	return Aggregator{CAFullScale: DefaultCAFullScale}
}

func (g Aggregator) fullScale() float64 {
	if g.CAFullScale > 0 {
		return g.CAFullScale
	}
	return DefaultCAFullScale
}

// AverageCA rata-rata aritmetika dari skor CA yang ADA saja;
// nil bila ketiganya kosong.
func (g Aggregator) AverageCA(a1, a2, a3 *float64) *float64 {
	sum := 0.0
	n := 0
	for _, a := range []*float64{a1, a2, a3} {
		if a != nil {
			sum += *a
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// CAComponent reweight rata-rata CA ke kontribusi 20 poin.
// avg/fullScale * 20 — dengan fullScale benar, hasil tidak pernah > 20.
func (g Aggregator) CAComponent(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	v := *avg / g.fullScale() * CAWeightPoints
	return &v
}

// ExamComponent reweight skor exam ke kontribusi 80 poin.
func (g Aggregator) ExamComponent(exam *float64) *float64 {
	if exam == nil {
		return nil
	}
	v := *exam * ExamWeightFraction
	return &v
}

// Total jumlah kedua komponen bila keduanya ada; kalau salah satu nil,
// fallback ke flat marks warisan (submission lama tanpa kolom CA).
func (g Aggregator) Total(caComponent, examComponent, fallbackMarks *float64) *float64 {
	if caComponent != nil && examComponent != nil {
		v := *caComponent + *examComponent
		return &v
	}
	return fallbackMarks
}

// Round1 pembulatan 1 desimal — dipakai HANYA saat nilai tampil di row
// (bukan di tengah perhitungan, supaya error pembulatan tidak menumpuk).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func Round1p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := Round1(*v)
	return &r
}

// RoundHalfAway pembulatan ke integer terdekat, half away from zero
// (dipakai utk overall identifier).
func RoundHalfAway(v float64) int {
	return int(math.Copysign(math.Floor(math.Abs(v)+0.5), v))
}
