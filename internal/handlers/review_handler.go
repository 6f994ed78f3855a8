package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mistriBack/internal/models"
	"mistriBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.MechanicReview
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	review, err := h.Service.AddReview(r.Context(), review)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCustomerName),
			errors.Is(err, models.ErrInvalidRating),
			errors.Is(err, models.ErrInvalidMechanicID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrNoRecord):
			http.Error(w, "Mechanic not found", http.StatusNotFound)
		default:
			log.Printf("CreateReview error: %v", err)
			http.Error(w, "Failed to create review", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

func (h *ReviewHandler) GetReviewsByMechanicID(w http.ResponseWriter, r *http.Request) {
	mechanicID := r.URL.Query().Get(":mechanic_id")
	if mechanicID == "" {
		http.Error(w, "Invalid mechanic_id", http.StatusBadRequest)
		return
	}
	reviews, err := h.Service.GetReviewsByMechanicID(r.Context(), mechanicID)
	if err != nil {
		log.Printf("GetReviewsByMechanicID error: %v", err)
		http.Error(w, "Failed to get reviews", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}
