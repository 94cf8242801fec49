package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

type SessionHandler struct {
	repo SessionRepo
}

func NewSessionHandler(repo SessionRepo) *SessionHandler {
	return &SessionHandler{repo}
}

func (handler *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		UserID     int             `json:"userId"`
		UserData   json.RawMessage `json:"userData"`
		Department string          `json:"department"`
		Group      string          `json:"group"`
		Token      string          `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Token == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	session := Session{
		UserID:     dto.UserID,
		UserData:   dto.UserData,
		Department: dto.Department,
		Group:      dto.Group,
		Token:      dto.Token,
	}
	if err := handler.repo.Store(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to save session"})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Session saved"})
}

func (handler *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	token := mux.Vars(r)["token"]

	session, err := handler.repo.GetByToken(r.Context(), token)
	if errors.Is(err, ErrSessionNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Session not found"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to retrieve session"})
		return
	}

	response := struct {
		UserData   json.RawMessage `json:"user_data"`
		Department string          `json:"department"`
		Group      string          `json:"cgroup"`
	}{
		UserData:   session.UserData,
		Department: session.Department,
		Group:      session.Group,
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	token := mux.Vars(r)["token"]

	if err := handler.repo.DeleteByToken(r.Context(), token); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to clear session"})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Session cleared"})
}
