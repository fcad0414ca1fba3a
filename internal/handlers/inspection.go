package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/loongsen/qcrelay/internal/docstore"
	"github.com/loongsen/qcrelay/internal/models"
	"github.com/loongsen/qcrelay/internal/services/inspection"
	"go.uber.org/zap"
)

const maxInspectionBody = 1 << 20

const msgMissingInspection = "Missing inspection data or Job Order."

// createInspection stores a QC inspection submitted by the tablet client
func (r *Router) createInspection(w http.ResponseWriter, req *http.Request) {
	log := r.requestLog(req)

	payload, err := decodeInspection(w, req)
	if err != nil {
		log.Warn("Invalid inspection payload", zap.Error(err))
		respondError(w, http.StatusBadRequest, msgMissingInspection)
		return
	}

	jobOrder, ok := payload.JobOrder()
	if !ok {
		respondError(w, http.StatusBadRequest, msgMissingInspection)
		return
	}
	log = log.With(zap.Any("job_order", jobOrder))
	log.Info("Inspection submitted")

	id, err := r.inspections.Save(req.Context(), payload)
	if err != nil {
		if errors.Is(err, inspection.ErrMissingJobOrder) {
			respondError(w, http.StatusBadRequest, msgMissingInspection)
			return
		}
		log.Error("Failed to save inspection", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save inspection data.")
		return
	}

	log.Info("Inspection saved", zap.String("id", id))
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Inspection saved successfully!",
		"id":      id,
	})
}

// getInspection returns a stored inspection with its id
func (r *Router) getInspection(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	doc, err := r.inspections.Get(req.Context(), id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Inspection not found")
			return
		}
		r.requestLog(req).Error("Failed to load inspection", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to load inspection data.")
		return
	}

	// The stored payload may carry its own "id", so it is returned untouched beside the document id
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":         id,
		"inspection": doc,
	})
}

// decodeInspection reads exactly one JSON value from an application/json body
func decodeInspection(w http.ResponseWriter, req *http.Request) (models.Inspection, error) {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return nil, fmt.Errorf("unsupported content type %q", req.Header.Get("Content-Type"))
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxInspectionBody))
	var payload models.Inspection
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unexpected data after JSON body")
	}
	return payload, nil
}
