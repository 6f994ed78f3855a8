package services

import (
	"errors"
	"testing"

	"mistriBack/internal/models"
)

func TestValidateMechanicInput(t *testing.T) {
	cases := []struct {
		name         string
		category     string
		state        string
		district     string
		perDayCost   float64
		availability string
		want         error
	}{
		{"valid profile", "Plumber", "Delhi", "South Delhi", 2000, "available", nil},
		{"valid without district", "Carpenter", "Kerala", "", 1500, "busy", nil},
		{"zero cost", "Plumber", "Delhi", "South Delhi", 0, "available", models.ErrInvalidPerDayCost},
		{"negative cost", "Plumber", "Delhi", "South Delhi", -100, "available", models.ErrInvalidPerDayCost},
		{"bad availability", "Plumber", "Delhi", "South Delhi", 2000, "on vacation", models.ErrInvalidAvailability},
		{"unknown category", "Wizard", "Delhi", "South Delhi", 2000, "available", models.ErrUnknownCategory},
		{"unknown state", "Plumber", "Atlantis", "", 2000, "available", models.ErrUnknownState},
		{"district of another state", "Plumber", "Delhi", "Pune", 2000, "available", models.ErrInvalidDistrict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateMechanicInput(tc.category, tc.state, tc.district, tc.perDayCost, tc.availability)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got error %v, want %v", err, tc.want)
			}
		})
	}
}
