package plan

import (
	"encoding/json"
	"errors"
	"net/http"
)

type PlanHandler struct {
	service PlanService
}

func NewPlanHandler(service PlanService) *PlanHandler {
	return &PlanHandler{service}
}

func (handler *PlanHandler) DetailsByBMNumber(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	bmNumber := r.URL.Query().Get("bmnumber")

	details, err := handler.service.DetailsByBMNumber(r.Context(), bmNumber)
	if errors.Is(err, ErrPlanNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "BM Number not found"})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(details); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *PlanHandler) RGDOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	bmNumber := r.URL.Query().Get("bmnumber")

	options, err := handler.service.RGDOptions(r.Context(), bmNumber)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if options == nil {
		options = []RGDOption{}
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(options); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *PlanHandler) RGIDByRGD(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	rgd := r.URL.Query().Get("rgd")

	rgid, err := handler.service.RGIDByRGD(r.Context(), rgd)
	if errors.Is(err, ErrRGIDNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Resource group not found"})
		return
	}
	if err != nil {
		http.Error(w, "Error fetching rgid", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"resource_group_id": rgid}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
