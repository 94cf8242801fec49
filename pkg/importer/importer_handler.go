package importer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type ImportHandler struct {
	service       ImportService
	maxUploadSize int64
}

func NewImportHandler(service ImportService, maxUploadSize int64) *ImportHandler {
	return &ImportHandler{service: service, maxUploadSize: maxUploadSize}
}

func (handler *ImportHandler) UploadMCRPlan(w http.ResponseWriter, r *http.Request) {
	handler.upload(w, r, handler.service.ImportMCRPlan)
}

func (handler *ImportHandler) UploadPlanisware(w http.ResponseWriter, r *http.Request) {
	handler.upload(w, r, handler.service.ImportPlanisware)
}

func (handler *ImportHandler) upload(w http.ResponseWriter, r *http.Request, run func(ctx context.Context, file io.Reader) (Report, error)) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(handler.maxUploadSize); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	report, err := run(r.Context(), file)
	if errors.Is(err, ErrEmptySheet) {
		http.Error(w, "Excel file is empty", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.WithError(err).Error("Error processing uploaded file")
		http.Error(w, "Error processing file", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	response := struct {
		Message string `json:"message"`
		Success bool   `json:"success"`
		Report  Report `json:"report"`
	}{
		Message: "File uploaded and data stored in database",
		Success: true,
		Report:  report,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
