package services

import (
	"context"
	"testing"
)

type fakeFavoriteStore struct {
	pairs map[string]bool
}

func favKey(userEmail, mechanicID string) string {
	return userEmail + "|" + mechanicID
}

func (f *fakeFavoriteStore) AddToFavorites(ctx context.Context, userEmail, mechanicID string) error {
	f.pairs[favKey(userEmail, mechanicID)] = true
	return nil
}

func (f *fakeFavoriteStore) RemoveFromFavorites(ctx context.Context, userEmail, mechanicID string) error {
	delete(f.pairs, favKey(userEmail, mechanicID))
	return nil
}

func (f *fakeFavoriteStore) IsFavorite(ctx context.Context, userEmail, mechanicID string) (bool, error) {
	return f.pairs[favKey(userEmail, mechanicID)], nil
}

func (f *fakeFavoriteStore) GetFavoritesByUser(ctx context.Context, userEmail string) ([]string, error) {
	ids := []string{}
	for key, present := range f.pairs {
		if present && key[:len(userEmail)+1] == userEmail+"|" {
			ids = append(ids, key[len(userEmail)+1:])
		}
	}
	return ids, nil
}

func TestToggleFavoriteTransitions(t *testing.T) {
	store := &fakeFavoriteStore{pairs: map[string]bool{}}
	s := &FavoriteService{FavoriteRepo: store}
	ctx := context.Background()

	isFavorite, err := s.ToggleFavorite(ctx, "asha@example.com", "m1")
	if err != nil {
		t.Fatalf("first toggle returned error: %v", err)
	}
	if !isFavorite {
		t.Fatal("first toggle must report favorite")
	}

	isFavorite, err = s.ToggleFavorite(ctx, "asha@example.com", "m1")
	if err != nil {
		t.Fatalf("second toggle returned error: %v", err)
	}
	if isFavorite {
		t.Fatal("second toggle must report not favorite")
	}
}

// Toggling the same pair twice returns the set to its original membership,
// whichever state it started in.
func TestDoubleToggleRestoresMembership(t *testing.T) {
	cases := []struct {
		name           string
		initiallySaved bool
	}{
		{"starts absent", false},
		{"starts present", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeFavoriteStore{pairs: map[string]bool{}}
			if tc.initiallySaved {
				store.pairs[favKey("asha@example.com", "m1")] = true
			}
			s := &FavoriteService{FavoriteRepo: store}
			ctx := context.Background()

			for i := 0; i < 2; i++ {
				if _, err := s.ToggleFavorite(ctx, "asha@example.com", "m1"); err != nil {
					t.Fatalf("toggle %d returned error: %v", i+1, err)
				}
			}

			saved, err := s.IsFavorite(ctx, "asha@example.com", "m1")
			if err != nil {
				t.Fatalf("IsFavorite returned error: %v", err)
			}
			if saved != tc.initiallySaved {
				t.Fatalf("membership after double toggle = %v, want %v", saved, tc.initiallySaved)
			}
		})
	}
}
