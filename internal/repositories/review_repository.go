package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mistriBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.MechanicReview) (models.MechanicReview, error) {
	rev.ID = uuid.New().String()
	rev.CreatedAt = time.Now()

	query := `
		INSERT INTO mechanic_reviews (id, mechanic_id, customer_name, customer_email, rating, review_text, work_category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query,
		rev.ID, rev.MechanicID, rev.CustomerName, rev.CustomerEmail, rev.Rating, rev.ReviewText, rev.WorkCategory,
	)
	if err != nil {
		return models.MechanicReview{}, err
	}
	return rev, nil
}

// GetReviewsByMechanicID returns reviews newest first; an empty slice when
// the mechanic has none.
func (r *ReviewRepository) GetReviewsByMechanicID(ctx context.Context, mechanicID string) ([]models.MechanicReview, error) {
	query := `
		SELECT id, mechanic_id, customer_name, customer_email, rating, review_text, work_category, created_at
		FROM mechanic_reviews
		WHERE mechanic_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, mechanicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.MechanicReview{}
	for rows.Next() {
		var rev models.MechanicReview
		var customerEmail, reviewText, workCategory sql.NullString
		err := rows.Scan(&rev.ID, &rev.MechanicID, &rev.CustomerName, &customerEmail,
			&rev.Rating, &reviewText, &workCategory, &rev.CreatedAt)
		if err != nil {
			return nil, err
		}
		if customerEmail.Valid && customerEmail.String != "" {
			rev.CustomerEmail = &customerEmail.String
		}
		if reviewText.Valid && reviewText.String != "" {
			rev.ReviewText = &reviewText.String
		}
		if workCategory.Valid && workCategory.String != "" {
			rev.WorkCategory = &workCategory.String
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mechanic reviews rows error: %w", err)
	}
	return reviews, nil
}
