package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"go-kpi-analyser/internal/kpi"
	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/internal/store"
)

type createKPIRequest struct {
	Name      string                 `json:"name"`
	Type      model.AggType          `json:"type"`
	Field     string                 `json:"field"`
	Filters   map[string]interface{} `json:"filters"`
	DatasetID string                 `json:"datasetId"`
}

// CreateKPI creates a new KPI definition
// @Summary Create a KPI
// @Description Define a new KPI (aggregation type, field and optional filters) against a dataset
// @Tags kpis
// @Accept json
// @Produce json
// @Param kpi body createKPIRequest true "KPI definition"
// @Success 201 {object} model.KPI "Created KPI"
// @Failure 400 {object} map[string]interface{} "Missing or invalid fields"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /kpis [post]
func CreateKPI(w http.ResponseWriter, r *http.Request) {
	var req createKPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &model.ValidationError{Message: "invalid JSON payload"})
		return
	}

	if req.Name == "" || req.Type == "" || req.Field == "" || req.DatasetID == "" {
		writeError(w, &model.ValidationError{Message: "missing required fields: name, type, field, datasetId"})
		return
	}
	if !model.ValidAggType(req.Type) {
		writeError(w, &model.ValidationError{Message: "invalid KPI type. Must be one of: SUM, AVG, COUNT, MIN, MAX, PERCENT_CHANGE"})
		return
	}
	if _, err := store.GetDataset(req.DatasetID); err != nil {
		writeError(w, err)
		return
	}

	k := &model.KPI{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Type:      req.Type,
		Field:     req.Field,
		Filters:   req.Filters,
		DatasetID: req.DatasetID,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.SaveKPI(k); err != nil {
		writeError(w, err)
		return
	}

	fmt.Printf("✅ Created KPI: %s (%s)\n", k.Name, k.Type)

	writeJSON(w, http.StatusCreated, k)
}

// ListKPIs retrieves KPI definitions
// @Summary List KPIs
// @Description Get all KPIs, optionally scoped to one dataset via ?datasetId=
// @Tags kpis
// @Produce json
// @Param datasetId query string false "Dataset ID filter"
// @Success 200 {array} model.KPI "List of KPIs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /kpis [get]
func ListKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := store.ListKPIs(r.URL.Query().Get("datasetId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if kpis == nil {
		kpis = []model.KPI{}
	}
	writeJSON(w, http.StatusOK, kpis)
}

// GetKPI retrieves one KPI
// @Summary Get KPI
// @Description Retrieve one KPI definition with its dataset name and last calculated value
// @Tags kpis
// @Produce json
// @Param id path string true "KPI ID"
// @Success 200 {object} model.KPI "KPI details"
// @Failure 404 {object} map[string]interface{} "KPI not found"
// @Router /kpis/{id} [get]
func GetKPI(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r.URL.Path, "/api/v1/kpis/", "")
	if id == "" {
		writeError(w, &model.ValidationError{Message: "KPI ID is required"})
		return
	}

	k, err := store.GetKPI(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, k)
}

// CalculateKPI evaluates one KPI against its dataset
// @Summary Calculate KPI
// @Description Evaluate a KPI against its dataset rows and persist the new value
// @Tags kpis
// @Produce json
// @Param id path string true "KPI ID"
// @Success 200 {object} map[string]interface{} "Calculated value"
// @Failure 400 {object} map[string]interface{} "Empty dataset or invalid KPI type"
// @Failure 404 {object} map[string]interface{} "KPI not found"
// @Router /kpis/{id}/calculate [get]
func CalculateKPI(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r.URL.Path, "/api/v1/kpis/", "/calculate")
	if id == "" {
		writeError(w, &model.ValidationError{Message: "KPI ID is required"})
		return
	}

	k, err := store.GetKPI(id)
	if err != nil {
		writeError(w, err)
		return
	}

	rows, err := store.GetDatasetRows(k.DatasetID, 0)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(rows) == 0 {
		writeError(w, &model.EmptyDatasetError{DatasetID: k.DatasetID})
		return
	}

	value, err := kpi.Calculate(rows, kpi.Config{Type: k.Type, Field: k.Field, Filters: k.Filters})
	if err != nil {
		writeError(w, err)
		return
	}

	calculatedAt := time.Now().UTC()
	if err := store.UpdateKPIValue(id, value, calculatedAt); err != nil {
		writeError(w, err)
		return
	}

	fmt.Printf("📊 Calculated KPI %s: %v\n", id, value)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"kpiId":        id,
		"name":         k.Name,
		"value":        value,
		"calculatedAt": calculatedAt,
	})
}

// CalculateAllKPIs evaluates every KPI, isolating per-KPI failures
// @Summary Calculate all KPIs
// @Description Evaluate all KPIs (optionally scoped to one dataset); one KPI failing never aborts the rest
// @Tags kpis
// @Produce json
// @Param datasetId query string false "Dataset ID filter"
// @Success 200 {object} map[string]interface{} "Per-KPI results"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /kpis/calculate-all [get]
func CalculateAllKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := store.ListKPIs(r.URL.Query().Get("datasetId"))
	if err != nil {
		writeError(w, err)
		return
	}

	results := kpi.EvaluateBatch(kpis, func(datasetID string) ([]model.GenericRecord, error) {
		return store.GetDatasetRows(datasetID, 0)
	})

	for _, res := range results {
		if res.Value == nil {
			continue
		}
		if err := store.UpdateKPIValue(res.KPIID, *res.Value, res.CalculatedAt); err != nil {
			fmt.Printf("❌ Failed to persist KPI %s value: %v\n", res.KPIID, err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "KPI calculation complete",
		"results": results,
	})
}

type updateKPIRequest struct {
	Name    *string                `json:"name"`
	Type    *model.AggType         `json:"type"`
	Field   *string                `json:"field"`
	Filters map[string]interface{} `json:"filters"`
}

// UpdateKPI applies a partial update to a KPI
// @Summary Update KPI
// @Description Update any subset of name, type, field and filters; omitted fields keep their value
// @Tags kpis
// @Accept json
// @Produce json
// @Param id path string true "KPI ID"
// @Param kpi body updateKPIRequest true "Fields to update"
// @Success 200 {object} model.KPI "Updated KPI"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 404 {object} map[string]interface{} "KPI not found"
// @Router /kpis/{id} [put]
func UpdateKPI(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r.URL.Path, "/api/v1/kpis/", "")
	if id == "" {
		writeError(w, &model.ValidationError{Message: "KPI ID is required"})
		return
	}

	var req updateKPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &model.ValidationError{Message: "invalid JSON payload"})
		return
	}
	if req.Type != nil && !model.ValidAggType(*req.Type) {
		writeError(w, &model.ValidationError{Message: "invalid KPI type. Must be one of: SUM, AVG, COUNT, MIN, MAX, PERCENT_CHANGE"})
		return
	}

	k, err := store.UpdateKPI(id, store.KPIUpdate{
		Name:    req.Name,
		Type:    req.Type,
		Field:   req.Field,
		Filters: req.Filters,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, k)
}

// DeleteKPI removes one KPI
// @Summary Delete KPI
// @Description Delete one KPI definition
// @Tags kpis
// @Produce json
// @Param id path string true "KPI ID"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 404 {object} map[string]interface{} "KPI not found"
// @Router /kpis/{id} [delete]
func DeleteKPI(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r.URL.Path, "/api/v1/kpis/", "")
	if id == "" {
		writeError(w, &model.ValidationError{Message: "KPI ID is required"})
		return
	}

	if err := store.DeleteKPI(id); err != nil {
		writeError(w, err)
		return
	}

	fmt.Printf("🗑️ Deleted KPI: %s\n", id)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "KPI deleted successfully",
	})
}
