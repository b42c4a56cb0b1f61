package seeds

import (
	"gorm.io/gorm"

	grading "schoolku_backend/internals/seeds/grading"
)

func RunAllSeeds(db *gorm.DB) {
	//* Grading
	grading.SeedGradeBoundariesFromJSON(db, "internals/seeds/grading/data_grade_boundaries.json")
}
