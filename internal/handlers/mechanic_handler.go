package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mistriBack/internal/models"
	"mistriBack/internal/search"
	"mistriBack/internal/services"
)

type MechanicHandler struct {
	Service *services.MechanicService
}

// GetMechanics serves the public directory. On a storage failure the cause
// is logged and an empty list is returned so the listing stays usable.
func (h *MechanicHandler) GetMechanics(w http.ResponseWriter, r *http.Request) {
	mechanics, err := h.Service.ListMechanics(r.Context())
	if err != nil {
		log.Printf("GetMechanics error: %v", err)
		mechanics = []models.Mechanic{}
	}
	json.NewEncoder(w).Encode(mechanics)
}

func (h *MechanicHandler) GetFilteredMechanics(w http.ResponseWriter, r *http.Request) {
	var filters search.Filters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	mechanics, err := h.Service.FilterMechanics(r.Context(), filters)
	if err != nil {
		log.Printf("GetFilteredMechanics error: %v", err)
		mechanics = []models.Mechanic{}
	}
	json.NewEncoder(w).Encode(mechanics)
}

func (h *MechanicHandler) GetMechanicStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		log.Printf("GetMechanicStats error: %v", err)
		stats = search.Summary{}
	}
	json.NewEncoder(w).Encode(stats)
}

func (h *MechanicHandler) GetMechanicByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Invalid mechanic id", http.StatusBadRequest)
		return
	}
	mechanic, err := h.Service.GetMechanicByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "Mechanic not found", http.StatusNotFound)
			return
		}
		log.Printf("GetMechanicByID error: %v", err)
		http.Error(w, "Failed to get mechanic", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(mechanic)
}

// GetMechanicByUserID returns 404 when the account has no profile yet. The
// caller treats that as an empty state, not a failure.
func (h *MechanicHandler) GetMechanicByUserID(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "Invalid user_id", http.StatusBadRequest)
		return
	}
	mechanic, err := h.Service.GetMechanicByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "No profile for this account", http.StatusNotFound)
			return
		}
		log.Printf("GetMechanicByUserID error: %v", err)
		http.Error(w, "Failed to get mechanic", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(mechanic)
}

func (h *MechanicHandler) CreateMechanic(w http.ResponseWriter, r *http.Request) {
	var mechanic models.Mechanic
	if err := json.NewDecoder(r.Body).Decode(&mechanic); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	// the profile is always bound to the verified caller; a body user_id
	// naming someone else would squat that account's profile slot
	caller, _ := r.Context().Value("user_id").(string)
	if caller == "" {
		http.Error(w, "Missing user identity", http.StatusUnauthorized)
		return
	}
	if mechanic.UserID != "" && mechanic.UserID != caller {
		http.Error(w, "Forbidden: not the profile owner", http.StatusForbidden)
		return
	}
	mechanic.UserID = caller

	mechanic, err := h.Service.CreateMechanic(r.Context(), mechanic)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateUsername):
			http.Error(w, "Username already taken", http.StatusConflict)
		case errors.Is(err, models.ErrDuplicateProfile):
			http.Error(w, "Account already has a profile", http.StatusConflict)
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("CreateMechanic error: %v", err)
			http.Error(w, "Failed to create mechanic", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(mechanic)
}

func (h *MechanicHandler) UpdateMechanic(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "Invalid user_id", http.StatusBadRequest)
		return
	}
	if caller, ok := r.Context().Value("user_id").(string); ok && caller != userID {
		http.Error(w, "Forbidden: not the profile owner", http.StatusForbidden)
		return
	}

	var upd models.MechanicUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateMechanic(r.Context(), userID, upd); err != nil {
		switch {
		case errors.Is(err, models.ErrNoRecord):
			http.Error(w, "No profile for this account", http.StatusNotFound)
		case errors.Is(err, models.ErrDuplicateUsername):
			http.Error(w, "Username already taken", http.StatusConflict)
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("UpdateMechanic error: %v", err)
			http.Error(w, "Failed to update mechanic", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *MechanicHandler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	var req models.CheckUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	available, err := h.Service.IsUsernameAvailable(r.Context(), req.Username, req.ExcludeUserID)
	if err != nil {
		log.Printf("CheckUsername error: %v", err)
		http.Error(w, "Failed to check username", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"available": available})
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrInvalidPerDayCost) ||
		errors.Is(err, models.ErrInvalidAvailability) ||
		errors.Is(err, models.ErrUnknownCategory) ||
		errors.Is(err, models.ErrUnknownState) ||
		errors.Is(err, models.ErrInvalidDistrict)
}
