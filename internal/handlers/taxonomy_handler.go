package handlers

import (
	"encoding/json"
	"net/http"

	"mistriBack/internal/taxonomy"
)

type TaxonomyHandler struct{}

func (h *TaxonomyHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(taxonomy.Categories())
}

func (h *TaxonomyHandler) GetStates(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(taxonomy.States())
}

func (h *TaxonomyHandler) GetDistrictsByState(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get(":state")
	districts, ok := taxonomy.DistrictsByState(state)
	if !ok {
		http.Error(w, "Unknown state", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(districts)
}
