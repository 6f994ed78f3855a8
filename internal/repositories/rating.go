package repositories

import (
	"context"
	"database/sql"
)

// AverageRating computes the mean review rating for a mechanic on the
// database side, so the recompute always reads the full committed review set.
func (r *ReviewRepository) AverageRating(ctx context.Context, mechanicID string) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM mechanic_reviews WHERE mechanic_id = ?`
	var avg sql.NullFloat64
	if err := r.DB.QueryRowContext(ctx, query, mechanicID).Scan(&avg); err != nil {
		return 0, err
	}
	if avg.Valid {
		return avg.Float64, nil
	}
	return 0, nil
}
