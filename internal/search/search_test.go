package search

import (
	"reflect"
	"testing"

	"mistriBack/internal/models"
)

func testDirectory() []models.Mechanic {
	return []models.Mechanic{
		{ID: "m1", Name: "Ravi", Category: "Plumber", State: "Delhi", District: "South Delhi", PerDayCost: 2000, Rating: 4.5, Availability: "available"},
		{ID: "m2", Name: "Suresh", Category: "Carpenter", State: "Delhi", District: "West Delhi", PerDayCost: 3000, Rating: 4.0, Availability: "busy"},
		{ID: "m3", Name: "Amit", Category: "Electrician", State: "Punjab", District: "Ludhiana", PerDayCost: 1500, Rating: 0, Availability: "available"},
	}
}

func ids(mechanics []models.Mechanic) []string {
	out := make([]string, 0, len(mechanics))
	for _, m := range mechanics {
		out = append(out, m.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	cases := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"all unbounded returns directory unchanged", Filters{}, []string{"m1", "m2", "m3"}},
		{"category exact match", Filters{Category: "Plumber"}, []string{"m1"}},
		{"category no match", Filters{Category: "Welder"}, []string{}},
		{"state match", Filters{State: "Delhi"}, []string{"m1", "m2"}},
		{"district match", Filters{State: "Delhi", District: "West Delhi"}, []string{"m2"}},
		{"max cost bounds", Filters{MaxCost: 2500}, []string{"m1", "m3"}},
		{"max cost zero is unbounded", Filters{MaxCost: 0}, []string{"m1", "m2", "m3"}},
		{"min rating zero keeps unrated", Filters{MinRating: 0}, []string{"m1", "m2", "m3"}},
		{"min rating excludes below", Filters{MinRating: 4.5}, []string{"m1"}},
		{"state plus max cost scenario", Filters{State: "Delhi", MaxCost: 2500}, []string{"m1"}},
		{"all predicates together", Filters{Category: "Plumber", State: "Delhi", District: "South Delhi", MaxCost: 2000, MinRating: 4.5}, []string{"m1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(testDirectory(), tc.filters))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	dir := testDirectory()
	got := Apply(dir, Filters{})
	if !reflect.DeepEqual(got, dir) {
		t.Fatal("unbounded filters must return the directory unchanged")
	}
}

func TestApplyNeverLeaksOtherCategories(t *testing.T) {
	for _, m := range Apply(testDirectory(), Filters{Category: "Carpenter"}) {
		if m.Category != "Carpenter" {
			t.Fatalf("mechanic %s has category %q, want Carpenter", m.ID, m.Category)
		}
	}
}

func TestSetStateResetsDistrict(t *testing.T) {
	f := Filters{State: "Delhi", District: "South Delhi"}
	f.SetState("Punjab")
	if f.State != "Punjab" {
		t.Fatalf("state = %q, want Punjab", f.State)
	}
	if f.District != "" {
		t.Fatalf("district = %q, want unbounded after state change", f.District)
	}
}

func TestSummarize(t *testing.T) {
	cases := []struct {
		name      string
		mechanics []models.Mechanic
		want      Summary
	}{
		{"empty directory", nil, Summary{}},
		{"mixed availability", testDirectory(), Summary{TotalMechanics: 3, AvailableMechanics: 2, AvgCost: 2167}},
		{
			"rounds to nearest unit",
			[]models.Mechanic{{PerDayCost: 1000, Availability: "busy"}, {PerDayCost: 1001, Availability: "busy"}},
			Summary{TotalMechanics: 2, AvailableMechanics: 0, AvgCost: 1001},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.mechanics)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
