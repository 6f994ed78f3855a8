package search

import (
	"math"

	"mistriBack/internal/models"
)

// Filters holds the directory search state. Empty strings and zero MaxCost
// mean "unbounded". MinRating has no unbounded escape: a zero minimum still
// compares, which every rating satisfies.
type Filters struct {
	Category  string  `json:"category"`
	State     string  `json:"state"`
	District  string  `json:"district"`
	MaxCost   float64 `json:"max_cost"`
	MinRating float64 `json:"min_rating"`
}

// SetState switches the state filter and resets the district filter, since a
// district only makes sense within its own state.
func (f *Filters) SetState(state string) {
	f.State = state
	f.District = ""
}

// Apply returns the mechanics matching every active filter, preserving the
// input order.
func Apply(mechanics []models.Mechanic, f Filters) []models.Mechanic {
	out := make([]models.Mechanic, 0, len(mechanics))
	for _, m := range mechanics {
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.State != "" && m.State != f.State {
			continue
		}
		if f.District != "" && m.District != f.District {
			continue
		}
		if f.MaxCost != 0 && m.PerDayCost > f.MaxCost {
			continue
		}
		if m.Rating < f.MinRating {
			continue
		}
		out = append(out, m)
	}
	return out
}

type Summary struct {
	TotalMechanics     int `json:"total_mechanics"`
	AvailableMechanics int `json:"available_mechanics"`
	AvgCost            int `json:"avg_cost"`
}

// Summarize derives headline numbers from the unfiltered directory. AvgCost
// is the mean per-day cost rounded to the nearest whole unit, zero when the
// directory is empty.
func Summarize(mechanics []models.Mechanic) Summary {
	s := Summary{TotalMechanics: len(mechanics)}
	if len(mechanics) == 0 {
		return s
	}
	var total float64
	for _, m := range mechanics {
		if m.Availability == models.AvailabilityAvailable {
			s.AvailableMechanics++
		}
		total += m.PerDayCost
	}
	s.AvgCost = int(math.Round(total / float64(len(mechanics))))
	return s
}
