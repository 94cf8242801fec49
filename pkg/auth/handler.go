package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

type credentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userLoginDTO struct {
	Username   string `json:"username"`
	Department string `json:"department"`
	Group      string `json:"group"`
}

type loginResponseDTO struct {
	Auth    bool       `json:"auth"`
	Token   string     `json:"token,omitempty"`
	Message string     `json:"message,omitempty"`
	Result  []adminDTO `json:"result,omitempty"`
}

type adminDTO struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Username == "" || dto.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	if err := handler.service.RegisterAdmin(r.Context(), dto.Username, dto.Password); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (handler *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, admin, err := handler.service.AdminLogin(r.Context(), dto.Username, dto.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownUser):
			writeJSON(w, http.StatusOK, loginResponseDTO{Auth: false, Message: "No user exists"})
		case errors.Is(err, ErrInvalidCredentials):
			writeJSON(w, http.StatusOK, loginResponseDTO{Auth: false, Message: "Wrong username/password combination!"})
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponseDTO{
		Auth:   true,
		Token:  token,
		Result: []adminDTO{{ID: admin.ID, Username: admin.Username}},
	})
}

func (handler *Handler) UserLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto userLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, _, err := handler.service.UserLogin(r.Context(), dto.Username, dto.Department, dto.Group)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, loginResponseDTO{Auth: true, Token: token})
}

func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	token := r.Header.Get("x-access-token")
	if err := handler.service.Logout(token); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "No token provided"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out successfully"})
}

// ProtectedRoute only confirms the token the middleware already validated.
func (handler *Handler) ProtectedRoute(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Token is valid"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}
