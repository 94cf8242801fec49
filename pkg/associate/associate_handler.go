package associate

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type AssociateDTO struct {
	ID             int    `json:"id,omitempty"`
	EmployeeName   string `json:"employee_name"`
	EmployeeID     int    `json:"employee_id"`
	EmployeeStatus string `json:"employee_status"`
	EmployeeDept   string `json:"employee_dept,omitempty"`
	EmployeeTeam   string `json:"employee_team,omitempty"`
}

type OptionDTO struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type AssociateHandler struct {
	service AssociateService
}

func NewAssociateHandler(service AssociateService) *AssociateHandler {
	return &AssociateHandler{service}
}

func (handler *AssociateHandler) AddAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		Associates   []AssociateDTO `json:"associates"`
		EmployeeDept string         `json:"employee_dept"`
		EmployeeTeam string         `json:"employee_team"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	associates := make([]Associate, 0, len(dto.Associates))
	for _, a := range dto.Associates {
		associates = append(associates, dtoToAssociate(a))
	}

	count, err := handler.service.AddAll(r.Context(), associates, dto.EmployeeDept, dto.EmployeeTeam)
	if err != nil {
		if errors.Is(err, ErrEmptyRoster) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]int{"inserted": count}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *AssociateHandler) GetByTeam(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	team := r.URL.Query().Get("team")

	associates, err := handler.service.GetByTeam(r.Context(), team)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]AssociateDTO, 0, len(associates))
	for _, a := range associates {
		dtos = append(dtos, associateToDTO(a))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *AssociateHandler) Options(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	team := r.URL.Query().Get("team")

	options, err := handler.service.OptionsByTeam(r.Context(), team)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]OptionDTO, 0, len(options))
	for _, o := range options {
		dtos = append(dtos, OptionDTO{Label: o.Label, Value: o.Value})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *AssociateHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto AssociateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	associate := dtoToAssociate(dto)
	associate.ID = id

	ok, err := handler.service.Update(r.Context(), associate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Associate not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Data updated successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *AssociateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Associate not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func associateToDTO(a Associate) AssociateDTO {
	return AssociateDTO{
		ID:             a.ID,
		EmployeeName:   a.EmployeeName,
		EmployeeID:     a.EmployeeID,
		EmployeeStatus: a.EmployeeStatus,
		EmployeeDept:   a.EmployeeDept,
		EmployeeTeam:   a.EmployeeTeam,
	}
}

func dtoToAssociate(dto AssociateDTO) Associate {
	return Associate{
		ID:             dto.ID,
		EmployeeName:   dto.EmployeeName,
		EmployeeID:     dto.EmployeeID,
		EmployeeStatus: dto.EmployeeStatus,
		EmployeeDept:   dto.EmployeeDept,
		EmployeeTeam:   dto.EmployeeTeam,
	}
}
