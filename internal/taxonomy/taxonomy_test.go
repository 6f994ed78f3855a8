package taxonomy

import "testing"

func TestValidDistrict(t *testing.T) {
	cases := []struct {
		name     string
		state    string
		district string
		want     bool
	}{
		{"district of its state", "Delhi", "South Delhi", true},
		{"district of another state", "Delhi", "Pune", false},
		{"empty district for known state", "Karnataka", "", true},
		{"unknown state", "Atlantis", "South Delhi", false},
		{"unknown state empty district", "Atlantis", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidDistrict(tc.state, tc.district); got != tc.want {
				t.Fatalf("ValidDistrict(%q, %q) = %v, want %v", tc.state, tc.district, got, tc.want)
			}
		})
	}
}

func TestEveryDistrictBelongsToItsState(t *testing.T) {
	for _, state := range States() {
		districts, ok := DistrictsByState(state)
		if !ok {
			t.Fatalf("state %q has no district list", state)
		}
		if len(districts) == 0 {
			t.Fatalf("state %q has an empty district list", state)
		}
		for _, d := range districts {
			if !ValidDistrict(state, d) {
				t.Errorf("district %q not valid for its own state %q", d, state)
			}
		}
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("Plumber") {
		t.Error("Plumber should be a valid category")
	}
	if ValidCategory("Astronaut") {
		t.Error("Astronaut should not be a valid category")
	}
	if ValidCategory("") {
		t.Error("empty category should not be valid")
	}
}

func TestValidAvailability(t *testing.T) {
	for _, s := range []string{"available", "busy", "unavailable"} {
		if !ValidAvailability(s) {
			t.Errorf("%q should be a valid availability", s)
		}
	}
	for _, s := range []string{"", "AVAILABLE", "offline"} {
		if ValidAvailability(s) {
			t.Errorf("%q should not be a valid availability", s)
		}
	}
}
