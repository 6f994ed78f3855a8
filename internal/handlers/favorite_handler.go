package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"mistriBack/internal/models"
	"mistriBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func userEmailFromContext(r *http.Request) string {
	email, _ := r.Context().Value("email").(string)
	return email
}

func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userEmail := userEmailFromContext(r)
	if userEmail == "" {
		http.Error(w, "Missing user identity", http.StatusUnauthorized)
		return
	}

	var req models.FavoriteToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MechanicID == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	isFavorite, err := h.Service.ToggleFavorite(r.Context(), userEmail, req.MechanicID)
	if err != nil {
		log.Printf("ToggleFavorite error: %v", err)
		http.Error(w, "Failed to toggle favorite", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"is_favorite": isFavorite})
}

func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	userEmail := userEmailFromContext(r)
	mechanicID := r.URL.Query().Get(":mechanic_id")
	if userEmail == "" || mechanicID == "" {
		http.Error(w, "Invalid user or mechanic_id", http.StatusBadRequest)
		return
	}

	isFavorite, err := h.Service.IsFavorite(r.Context(), userEmail, mechanicID)
	if err != nil {
		log.Printf("IsFavorite error: %v", err)
		http.Error(w, "Failed to check favorite status", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"is_favorite": isFavorite})
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userEmail := userEmailFromContext(r)
	if userEmail == "" {
		http.Error(w, "Missing user identity", http.StatusUnauthorized)
		return
	}

	ids, err := h.Service.GetFavoritesByUser(r.Context(), userEmail)
	if err != nil {
		log.Printf("GetFavorites error: %v", err)
		http.Error(w, "Failed to get favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(ids)
}
