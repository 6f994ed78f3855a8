package services

import (
	"context"
	"log"
	"math"
	"strings"

	"mistriBack/internal/models"
)

// ReviewStore is the slice of the review repository this service needs.
// *repositories.ReviewRepository satisfies it.
type ReviewStore interface {
	CreateReview(ctx context.Context, rev models.MechanicReview) (models.MechanicReview, error)
	GetReviewsByMechanicID(ctx context.Context, mechanicID string) ([]models.MechanicReview, error)
	AverageRating(ctx context.Context, mechanicID string) (float64, error)
}

// RatedMechanicStore is the mechanic-side slice the recompute needs.
// *repositories.MechanicRepository satisfies it.
type RatedMechanicStore interface {
	GetMechanicByID(ctx context.Context, id string) (models.Mechanic, error)
	UpdateRating(ctx context.Context, mechanicID string, rating float64) error
}

type ReviewService struct {
	ReviewsRepo  ReviewStore
	MechanicRepo RatedMechanicStore
}

// AddReview inserts the review and then recomputes the mechanic's displayed
// rating as the mean of all their reviews, rounded to one decimal. The two
// steps are separate round trips, not a transaction: a review committed
// between them is missed by this recompute and picked up by the next one.
func (s *ReviewService) AddReview(ctx context.Context, rev models.MechanicReview) (models.MechanicReview, error) {
	if strings.TrimSpace(rev.CustomerName) == "" {
		return models.MechanicReview{}, models.ErrEmptyCustomerName
	}
	if rev.Rating < 1 || rev.Rating > 5 {
		return models.MechanicReview{}, models.ErrInvalidRating
	}
	if strings.TrimSpace(rev.MechanicID) == "" {
		return models.MechanicReview{}, models.ErrInvalidMechanicID
	}
	if _, err := s.MechanicRepo.GetMechanicByID(ctx, rev.MechanicID); err != nil {
		return models.MechanicReview{}, err
	}

	rev, err := s.ReviewsRepo.CreateReview(ctx, rev)
	if err != nil {
		return models.MechanicReview{}, err
	}

	if err := s.recomputeRating(ctx, rev.MechanicID); err != nil {
		// the review itself is stored; the stale rating corrects on the
		// next successful recompute
		log.Printf("failed to recompute rating for mechanic %s: %v", rev.MechanicID, err)
	}
	return rev, nil
}

func (s *ReviewService) GetReviewsByMechanicID(ctx context.Context, mechanicID string) ([]models.MechanicReview, error) {
	return s.ReviewsRepo.GetReviewsByMechanicID(ctx, mechanicID)
}

func (s *ReviewService) recomputeRating(ctx context.Context, mechanicID string) error {
	avg, err := s.ReviewsRepo.AverageRating(ctx, mechanicID)
	if err != nil {
		return err
	}
	return s.MechanicRepo.UpdateRating(ctx, mechanicID, roundRating(avg))
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
