package report

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ReportHandler struct {
	service ReportService
}

func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service}
}

// Fetch serves every report variant. Whichever of cgroup, cteam and pmomonth
// the client sends becomes a predicate of the compiled query; the rest are
// omitted.
func (handler *ReportHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	source, err := ParseSource(r.URL.Query().Get("dataSelected"))
	if err != nil {
		http.Error(w, "dataSelected must be one of all, mcr, nonmcr", http.StatusBadRequest)
		return
	}
	filter := Filter{
		Group:  r.URL.Query().Get("cgroup"),
		Team:   r.URL.Query().Get("cteam"),
		Month:  r.URL.Query().Get("pmomonth"),
		Source: source,
	}

	result, err := handler.service.Fetch(r.Context(), filter)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	response := struct {
		Query1Result []BilledRow   `json:"query1Result"`
		Query2Result []UnbilledRow `json:"query2Result"`
	}{
		Query1Result: result.Billed,
		Query2Result: result.Unbilled,
	}
	if response.Query1Result == nil {
		response.Query1Result = []BilledRow{}
	}
	if response.Query2Result == nil {
		response.Query2Result = []UnbilledRow{}
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UnderAllocated serves the group+team view; team is required here.
func (handler *ReportHandler) UnderAllocated(w http.ResponseWriter, r *http.Request) {
	handler.allocation(w, r, true)
}

// UnderAllocatedAllTeams serves the group-wide view across every team.
func (handler *ReportHandler) UnderAllocatedAllTeams(w http.ResponseWriter, r *http.Request) {
	handler.allocation(w, r, false)
}

func (handler *ReportHandler) UnderAllocatedCounts(w http.ResponseWriter, r *http.Request) {
	handler.allocationCounts(w, r, true)
}

func (handler *ReportHandler) UnderAllocatedCountsAllTeams(w http.ResponseWriter, r *http.Request) {
	handler.allocationCounts(w, r, false)
}

func (handler *ReportHandler) allocation(w http.ResponseWriter, r *http.Request, withTeam bool) {
	w.Header().Set("Content-Type", "application/json")

	month, group, team, err := allocationParams(r, withTeam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := handler.service.UnderAllocated(r.Context(), month, group, team)
	if err != nil {
		http.Error(w, "query error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []AllocationRow{}
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *ReportHandler) allocationCounts(w http.ResponseWriter, r *http.Request, withTeam bool) {
	w.Header().Set("Content-Type", "application/json")

	month, group, team, err := allocationParams(r, withTeam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := handler.service.UnderAllocatedCounts(r.Context(), month, group, team)
	if err != nil {
		http.Error(w, "query error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []TeamCount{}
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func allocationParams(r *http.Request, withTeam bool) (month, group, team string, err error) {
	query := r.URL.Query()
	month = query.Get("month")
	group = query.Get("group")
	if month == "" || group == "" {
		return "", "", "", errors.New("group and month are required")
	}
	if withTeam {
		team = query.Get("team")
		if team == "" {
			return "", "", "", errors.New("team is required")
		}
	}
	return month, group, team, nil
}
