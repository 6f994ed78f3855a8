package models

import (
	"time"
)

type MechanicReview struct {
	ID            string    `json:"id"`
	MechanicID    string    `json:"mechanic_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	Rating        int       `json:"rating"`
	ReviewText    *string   `json:"review_text,omitempty"`
	WorkCategory  *string   `json:"work_category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
