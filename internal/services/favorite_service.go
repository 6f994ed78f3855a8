package services

import (
	"context"
)

// FavoriteStore is the slice of the favorite repository this service needs.
// *repositories.FavoriteRepository satisfies it.
type FavoriteStore interface {
	AddToFavorites(ctx context.Context, userEmail, mechanicID string) error
	RemoveFromFavorites(ctx context.Context, userEmail, mechanicID string) error
	IsFavorite(ctx context.Context, userEmail, mechanicID string) (bool, error)
	GetFavoritesByUser(ctx context.Context, userEmail string) ([]string, error)
}

type FavoriteService struct {
	FavoriteRepo FavoriteStore
}

// ToggleFavorite is a strict state transition: the pair is removed if it
// exists and inserted otherwise. Two concurrent toggles from the same user
// can race; the storage row is authoritative either way.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userEmail, mechanicID string) (bool, error) {
	exists, err := s.FavoriteRepo.IsFavorite(ctx, userEmail, mechanicID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.FavoriteRepo.RemoveFromFavorites(ctx, userEmail, mechanicID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.FavoriteRepo.AddToFavorites(ctx, userEmail, mechanicID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userEmail, mechanicID string) (bool, error) {
	return s.FavoriteRepo.IsFavorite(ctx, userEmail, mechanicID)
}

func (s *FavoriteService) GetFavoritesByUser(ctx context.Context, userEmail string) ([]string, error) {
	return s.FavoriteRepo.GetFavoritesByUser(ctx, userEmail)
}
