package models

import (
	"time"
)

type Favorite struct {
	ID         int       `json:"id"`
	UserEmail  string    `json:"user_email"`
	MechanicID string    `json:"mechanic_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type FavoriteToggleRequest struct {
	MechanicID string `json:"mechanic_id"`
}
