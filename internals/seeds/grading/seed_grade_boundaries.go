package grading

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/grading/model"
)

type GradeBoundarySeed struct {
	GradeBoundaryGrade          string  `json:"grade_boundary_grade"`
	GradeBoundaryMinScore       float64 `json:"grade_boundary_min_score"`
	GradeBoundaryMaxScore       float64 `json:"grade_boundary_max_score"`
	GradeBoundaryPoints         float64 `json:"grade_boundary_points"`
	GradeBoundaryRemark         string  `json:"grade_boundary_remark"`
	GradeBoundaryDivisionWeight float64 `json:"grade_boundary_division_weight"`
	GradeBoundaryPosition       int     `json:"grade_boundary_position"`
}

func SeedGradeBoundariesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	var data []GradeBoundarySeed
	if err := json.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range data {
		var existing model.GradeBoundaryModel
		if err := db.Where("grade_boundary_grade = ?", item.GradeBoundaryGrade).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Grade %s sudah ada, lewati...", item.GradeBoundaryGrade)
			continue
		}

		record := model.GradeBoundaryModel{
			GradeBoundaryGrade:          item.GradeBoundaryGrade,
			GradeBoundaryMinScore:       item.GradeBoundaryMinScore,
			GradeBoundaryMaxScore:       item.GradeBoundaryMaxScore,
			GradeBoundaryPoints:         item.GradeBoundaryPoints,
			GradeBoundaryRemark:         item.GradeBoundaryRemark,
			GradeBoundaryDivisionWeight: item.GradeBoundaryDivisionWeight,
			GradeBoundaryPosition:       item.GradeBoundaryPosition,
			GradeBoundaryIsActive:       true,
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("❌ Gagal insert Grade %s: %v", item.GradeBoundaryGrade, err)
		} else {
			log.Printf("✅ Berhasil insert Grade %s", item.GradeBoundaryGrade)
		}
	}
}
