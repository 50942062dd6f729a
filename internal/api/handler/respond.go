// Package handler holds the HTTP handlers of the KPI API. Handlers do
// boundary validation and JSON shaping; all domain logic lives in the
// analyzer, recommend, kpi and store packages.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go-kpi-analyser/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto HTTP statuses and emits a uniform
// {"error": "..."} body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	var typeErr *model.InvalidKPITypeError
	var emptyErr *model.EmptyDatasetError
	var externalErr *model.ExternalServiceError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &typeErr), errors.As(err, &emptyErr):
		status = http.StatusBadRequest
	case errors.As(err, &externalErr):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}

// pathParam extracts the wildcard segment between prefix and suffix.
// suffix may be empty for trailing-id routes. Returns "" on any mismatch.
func pathParam(path, prefix, suffix string) string {
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	if len(path) < len(prefix)+len(suffix) {
		return ""
	}
	return path[len(prefix) : len(path)-len(suffix)]
}
