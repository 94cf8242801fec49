package taxonomy

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type GroupTeamDTO struct {
	TeamName  string `json:"teamName"`
	GroupName string `json:"groupName"`
	GRM       string `json:"grm"`
}

type GRMInfoDTO struct {
	GRMID int    `json:"grmid,omitempty"`
	Name  string `json:"grmname"`
	Email string `json:"grmemail"`
	Dept  string `json:"grm_dept"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Groups(w http.ResponseWriter, r *http.Request) {
	handler.writeStrings(w, r, "cgroup", func() ([]string, error) {
		return handler.service.Groups(r.Context())
	})
}

func (handler *Handler) AllTeams(w http.ResponseWriter, r *http.Request) {
	handler.writeStrings(w, r, "cteam", func() ([]string, error) {
		return handler.service.AllTeams(r.Context())
	})
}

func (handler *Handler) TeamsByGroup(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	handler.writeStrings(w, r, "cteam", func() ([]string, error) {
		return handler.service.TeamsByGroup(r.Context(), group)
	})
}

// writeStrings keeps the original row-object response shape: each value is
// wrapped as {"<field>": value}.
func (handler *Handler) writeStrings(w http.ResponseWriter, r *http.Request, field string, fetch func() ([]string, error)) {
	w.Header().Set("Content-Type", "application/json")
	values, err := fetch()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rows := make([]map[string]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, map[string]string{field: v})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) AddGroupTeam(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto GroupTeamDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := handler.service.AddGroupTeam(r.Context(), GroupTeam{Team: dto.TeamName, Group: dto.GroupName, GRMName: dto.GRM})
	if err != nil {
		if errors.Is(err, ErrIncompleteMapping) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]int{"id": id}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) GetGRMs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	grms, err := handler.service.AllGRMs(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]GRMInfoDTO, 0, len(grms))
	for _, grm := range grms {
		dtos = append(dtos, grmToDTO(grm))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) SaveGRM(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto GRMInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := handler.service.AddGRM(r.Context(), dtoToGRM(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]int{"grmid": id}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) UpdateGRM(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	grmID, err := strconv.Atoi(vars["grmid"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto GRMInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	grm := dtoToGRM(dto)
	grm.GRMID = grmID

	ok, err := handler.service.UpdateGRM(r.Context(), grm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "GRM not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Data updated successfully"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) DeleteGRM(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	grmID, err := strconv.Atoi(vars["grmid"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.service.DeleteGRM(r.Context(), grmID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "GRM not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) GRMDetails(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	dept := r.URL.Query().Get("grm_dept")

	grm, err := handler.service.GRMByDept(r.Context(), dept)
	if err != nil {
		if errors.Is(err, ErrGRMNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"grmname": grm.Name, "grmemail": grm.Email}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func grmToDTO(grm GRMInfo) GRMInfoDTO {
	return GRMInfoDTO{GRMID: grm.GRMID, Name: grm.Name, Email: grm.Email, Dept: grm.Dept}
}

func dtoToGRM(dto GRMInfoDTO) GRMInfo {
	return GRMInfo{GRMID: dto.GRMID, Name: dto.Name, Email: dto.Email, Dept: dto.Dept}
}
