package models

import (
	"errors"
)

var (
	ErrNoRecord            = errors.New("models: no matching record found")
	ErrDuplicateUsername   = errors.New("models: duplicate username")
	ErrDuplicateProfile    = errors.New("models: account already has a profile")
	ErrInvalidRating       = errors.New("models: rating must be between 1 and 5")
	ErrInvalidMechanicID   = errors.New("models: mechanic id is required")
	ErrEmptyCustomerName   = errors.New("models: customer name is required")
	ErrUnknownCategory     = errors.New("models: unknown category")
	ErrUnknownState        = errors.New("models: unknown state")
	ErrInvalidDistrict     = errors.New("models: district does not belong to state")
	ErrInvalidAvailability = errors.New("models: invalid availability status")
	ErrInvalidPerDayCost   = errors.New("models: per day cost must be positive")
)
