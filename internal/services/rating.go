package services

import (
	"math"

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

// RecalculateDoctorRating recomputes the doctor's average rating and review
// count from the reviews table and stores them on the user row. Called after
// every review create/update/delete.
func RecalculateDoctorRating(doctorID string) error {
	var stats struct {
		Avg   float64
		Count int64
	}

	err := database.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("doctor_id = ?", doctorID).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return database.DB.Model(&models.User{}).
		Where("id = ?", doctorID).
		Updates(map[string]interface{}{
			"average_rating":    math.Round(stats.Avg*10) / 10,
			"number_of_reviews": stats.Count,
		}).Error
}
