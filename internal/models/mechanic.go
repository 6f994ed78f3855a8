package models

import (
	"time"
)

const (
	AvailabilityAvailable   = "available"
	AvailabilityBusy        = "busy"
	AvailabilityUnavailable = "unavailable"
)

type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Mechanic struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id,omitempty"`
	Username        string       `json:"username,omitempty"`
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	State           string       `json:"state"`
	District        string       `json:"district"`
	Village         string       `json:"village"`
	PerDayCost      float64      `json:"per_day_cost"`
	ContactNumber   string       `json:"contact_number"`
	Email           string       `json:"email"`
	Experience      int          `json:"experience"`
	Description     string       `json:"description"`
	Availability    string       `json:"availability"`
	Rating          float64      `json:"rating"`
	CompletedJobs   int          `json:"completed_jobs"`
	ProfileImageURL *string      `json:"profile_image_url,omitempty"`
	Skills          []string     `json:"skills,omitempty"`
	SocialLinks     *SocialLinks `json:"social_links,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	EmailVerified   bool         `json:"email_verified"`
	PhoneVerified   bool         `json:"phone_verified"`
	IsFeatured      bool         `json:"is_featured"`
	PortfolioImages []string     `json:"portfolio_images,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       *time.Time   `json:"updated_at,omitempty"`
}

// MechanicUpdate is a sparse patch: nil fields are left untouched, non-nil
// fields are written as given, including explicit empty strings and zeros.
type MechanicUpdate struct {
	Username        *string      `json:"username,omitempty"`
	Name            *string      `json:"name,omitempty"`
	Category        *string      `json:"category,omitempty"`
	State           *string      `json:"state,omitempty"`
	District        *string      `json:"district,omitempty"`
	Village         *string      `json:"village,omitempty"`
	PerDayCost      *float64     `json:"per_day_cost,omitempty"`
	ContactNumber   *string      `json:"contact_number,omitempty"`
	Email           *string      `json:"email,omitempty"`
	Experience      *int         `json:"experience,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Availability    *string      `json:"availability,omitempty"`
	CompletedJobs   *int         `json:"completed_jobs,omitempty"`
	ProfileImageURL *string      `json:"profile_image_url,omitempty"`
	Skills          *[]string    `json:"skills,omitempty"`
	SocialLinks     *SocialLinks `json:"social_links,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	EmailVerified   *bool        `json:"email_verified,omitempty"`
	PhoneVerified   *bool        `json:"phone_verified,omitempty"`
	IsFeatured      *bool        `json:"is_featured,omitempty"`
	PortfolioImages *[]string    `json:"portfolio_images,omitempty"`
}

type CheckUsernameRequest struct {
	Username      string `json:"username"`
	ExcludeUserID string `json:"exclude_user_id,omitempty"`
}
