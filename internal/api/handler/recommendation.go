package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"go-kpi-analyser/internal/analyzer"
	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/internal/store"
)

// loadTable fetches a dataset's rows together with its original column order.
func loadTable(datasetID string) (model.Table, error) {
	dataset, err := store.GetDataset(datasetID)
	if err != nil {
		return model.Table{}, err
	}
	rows, err := store.GetDatasetRows(datasetID, 0)
	if err != nil {
		return model.Table{}, err
	}
	return model.Table{Columns: dataset.Columns, Rows: rows}, nil
}

// AnalyzeDataset runs column type inference, domain detection and statistics
// @Summary Analyze dataset
// @Description Infer column types, detect business domains and compute per-column statistics for a dataset
// @Tags recommendations
// @Produce json
// @Param datasetId path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Analysis result"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /recommendations/analyze/{datasetId} [get]
func AnalyzeDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := pathParam(r.URL.Path, "/api/v1/recommendations/analyze/", "")
	if datasetID == "" {
		writeError(w, &model.ValidationError{Message: "dataset ID is required"})
		return
	}

	table, err := loadTable(datasetID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"analysis": analyzer.Analyze(table),
		"message":  "Dataset analyzed successfully",
	})
}

// SuggestKPIs recommends KPIs for a dataset
// @Summary Suggest KPIs
// @Description Recommend up to 8 KPIs for a dataset, via the AI recommender when enabled with a heuristic fallback
// @Tags recommendations
// @Produce json
// @Param datasetId path string true "Dataset ID"
// @Param dashboardType query string false "Dashboard type hint" default(general)
// @Success 200 {object} map[string]interface{} "KPI recommendations"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /recommendations/suggest/{datasetId} [get]
func SuggestKPIs(w http.ResponseWriter, r *http.Request) {
	datasetID := pathParam(r.URL.Path, "/api/v1/recommendations/suggest/", "")
	if datasetID == "" {
		writeError(w, &model.ValidationError{Message: "dataset ID is required"})
		return
	}

	dashboardType := r.URL.Query().Get("dashboardType")
	if dashboardType == "" {
		dashboardType = "general"
	}

	table, err := loadTable(datasetID)
	if err != nil {
		writeError(w, err)
		return
	}
	analysis := analyzer.Analyze(table)

	recommendations, err := recommendFor(r, analysis, dashboardType)
	if err != nil {
		writeError(w, err)
		return
	}
	if recommendations == nil {
		recommendations = []model.Recommendation{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"recommendations": recommendations,
		"dashboardType":   dashboardType,
	})
}

// recommendFor tries the AI recommender when enabled and falls back to the
// heuristic when the call fails.
func recommendFor(r *http.Request, analysis *model.Analysis, dashboardType string) ([]model.Recommendation, error) {
	if ai != nil {
		recommendations, err := ai.Recommend(r.Context(), analysis, dashboardType)
		if err == nil {
			return recommendations, nil
		}
		fmt.Printf("⚠️ AI recommendation failed, using heuristic: %v\n", err)
	}
	return heuristic.Recommend(r.Context(), analysis, dashboardType)
}

type applyRequest struct {
	DatasetID       string                 `json:"datasetId"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// ApplyRecommendations persists accepted recommendations as KPIs
// @Summary Apply recommendations
// @Description Save a set of accepted recommendations as KPIs in one transaction
// @Tags recommendations
// @Accept json
// @Produce json
// @Param payload body applyRequest true "Dataset ID and accepted recommendations"
// @Success 200 {object} map[string]interface{} "Created KPIs"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /recommendations/apply [post]
func ApplyRecommendations(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &model.ValidationError{Message: "invalid JSON payload"})
		return
	}
	if req.DatasetID == "" || req.Recommendations == nil {
		writeError(w, &model.ValidationError{Message: "datasetId and recommendations are required"})
		return
	}
	for _, rec := range req.Recommendations {
		if rec.Name == "" || rec.Field == "" || !model.ValidAggType(rec.Type) {
			writeError(w, &model.ValidationError{Message: "every recommendation needs a name, a field and a valid type"})
			return
		}
	}
	if _, err := store.GetDataset(req.DatasetID); err != nil {
		writeError(w, err)
		return
	}

	now := time.Now().UTC()
	kpis := make([]model.KPI, 0, len(req.Recommendations))
	for _, rec := range req.Recommendations {
		kpis = append(kpis, model.KPI{
			ID:        uuid.New().String(),
			Name:      rec.Name,
			Type:      rec.Type,
			Field:     rec.Field,
			Filters:   map[string]interface{}{},
			DatasetID: req.DatasetID,
			CreatedAt: now,
		})
	}

	if err := store.SaveKPIs(kpis); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Successfully created %d KPIs", len(kpis)),
		"kpis":    kpis,
	})
}
