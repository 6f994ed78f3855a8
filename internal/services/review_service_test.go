package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mistriBack/internal/models"
)

// Validation runs before any repository call, so a zero-value service is
// enough to exercise the rejection paths.
func TestAddReviewValidation(t *testing.T) {
	cases := []struct {
		name   string
		review models.MechanicReview
		want   error
	}{
		{"rating zero", models.MechanicReview{MechanicID: "m1", CustomerName: "Asha", Rating: 0}, models.ErrInvalidRating},
		{"rating six", models.MechanicReview{MechanicID: "m1", CustomerName: "Asha", Rating: 6}, models.ErrInvalidRating},
		{"negative rating", models.MechanicReview{MechanicID: "m1", CustomerName: "Asha", Rating: -1}, models.ErrInvalidRating},
		{"empty customer name", models.MechanicReview{MechanicID: "m1", CustomerName: "", Rating: 4}, models.ErrEmptyCustomerName},
		{"whitespace customer name", models.MechanicReview{MechanicID: "m1", CustomerName: "   ", Rating: 4}, models.ErrEmptyCustomerName},
		{"missing mechanic id", models.MechanicReview{MechanicID: "", CustomerName: "Asha", Rating: 4}, models.ErrInvalidMechanicID},
	}

	s := &ReviewService{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddReview(context.Background(), tc.review)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got error %v, want %v", err, tc.want)
			}
		})
	}
}

type fakeReviewStore struct {
	reviews map[string][]models.MechanicReview
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: map[string][]models.MechanicReview{}}
}

func (f *fakeReviewStore) CreateReview(ctx context.Context, rev models.MechanicReview) (models.MechanicReview, error) {
	rev.ID = fmt.Sprintf("r%d", len(f.reviews[rev.MechanicID])+1)
	f.reviews[rev.MechanicID] = append(f.reviews[rev.MechanicID], rev)
	return rev, nil
}

func (f *fakeReviewStore) GetReviewsByMechanicID(ctx context.Context, mechanicID string) ([]models.MechanicReview, error) {
	return f.reviews[mechanicID], nil
}

func (f *fakeReviewStore) AverageRating(ctx context.Context, mechanicID string) (float64, error) {
	reviews := f.reviews[mechanicID]
	if len(reviews) == 0 {
		return 0, nil
	}
	var sum int
	for _, rev := range reviews {
		sum += rev.Rating
	}
	return float64(sum) / float64(len(reviews)), nil
}

type fakeRatedMechanicStore struct {
	ratings map[string]float64
}

func (f *fakeRatedMechanicStore) GetMechanicByID(ctx context.Context, id string) (models.Mechanic, error) {
	rating, ok := f.ratings[id]
	if !ok {
		return models.Mechanic{}, models.ErrNoRecord
	}
	return models.Mechanic{ID: id, Rating: rating}, nil
}

func (f *fakeRatedMechanicStore) UpdateRating(ctx context.Context, mechanicID string, rating float64) error {
	f.ratings[mechanicID] = rating
	return nil
}

func TestAddReviewRecomputesMeanRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"single review", []int{3}, 3},
		{"exact mean", []int{5, 5, 4, 4}, 4.5},
		{"rounded to one decimal", []int{5, 4, 4}, 4.3},
		{"half kept", []int{2, 3}, 2.5},
		{"all fives", []int{5, 5, 5}, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mechanics := &fakeRatedMechanicStore{ratings: map[string]float64{"m1": 0}}
			s := &ReviewService{ReviewsRepo: newFakeReviewStore(), MechanicRepo: mechanics}

			for _, rating := range tc.ratings {
				rev := models.MechanicReview{MechanicID: "m1", CustomerName: "Asha", Rating: rating}
				if _, err := s.AddReview(context.Background(), rev); err != nil {
					t.Fatalf("AddReview(%d) returned error: %v", rating, err)
				}
			}
			if got := mechanics.ratings["m1"]; got != tc.want {
				t.Fatalf("rating after %v reviews = %v, want %v", tc.ratings, got, tc.want)
			}
		})
	}
}

func TestAddReviewUnknownMechanic(t *testing.T) {
	reviews := newFakeReviewStore()
	s := &ReviewService{
		ReviewsRepo:  reviews,
		MechanicRepo: &fakeRatedMechanicStore{ratings: map[string]float64{}},
	}

	rev := models.MechanicReview{MechanicID: "ghost", CustomerName: "Asha", Rating: 4}
	_, err := s.AddReview(context.Background(), rev)
	if !errors.Is(err, models.ErrNoRecord) {
		t.Fatalf("got error %v, want %v", err, models.ErrNoRecord)
	}
	if len(reviews.reviews["ghost"]) != 0 {
		t.Fatal("review for unknown mechanic must not be stored")
	}
}

func TestRoundRating(t *testing.T) {
	cases := []struct {
		name string
		avg  float64
		want float64
	}{
		{"whole number", 4, 4},
		{"one decimal kept", 4.5, 4.5},
		{"rounds down", 4.333333, 4.3},
		{"rounds up", 4.666666, 4.7},
		{"midpoint rounds up", 4.25, 4.3},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := roundRating(tc.avg); got != tc.want {
				t.Fatalf("roundRating(%v) = %v, want %v", tc.avg, got, tc.want)
			}
		})
	}
}
