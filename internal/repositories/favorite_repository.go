package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddToFavorites(ctx context.Context, userEmail, mechanicID string) error {
	query := `INSERT INTO user_favorites (user_email, mechanic_id, created_at) VALUES (?, ?, NOW())`
	_, err := r.DB.ExecContext(ctx, query, userEmail, mechanicID)
	return err
}

func (r *FavoriteRepository) RemoveFromFavorites(ctx context.Context, userEmail, mechanicID string) error {
	query := `DELETE FROM user_favorites WHERE user_email = ? AND mechanic_id = ?`
	_, err := r.DB.ExecContext(ctx, query, userEmail, mechanicID)
	return err
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userEmail, mechanicID string) (bool, error) {
	query := `SELECT COUNT(*) FROM user_favorites WHERE user_email = ? AND mechanic_id = ?`
	var count int
	err := r.DB.QueryRowContext(ctx, query, userEmail, mechanicID).Scan(&count)
	return count > 0, err
}

// GetFavoritesByUser returns the mechanic ids the user has bookmarked.
func (r *FavoriteRepository) GetFavoritesByUser(ctx context.Context, userEmail string) ([]string, error) {
	query := `SELECT mechanic_id FROM user_favorites WHERE user_email = ?`
	rows, err := r.DB.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user favorites rows error: %w", err)
	}
	return ids, nil
}
