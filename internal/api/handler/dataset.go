package handler

import (
	"net/http"

	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/internal/store"
)

// ListDatasets retrieves all datasets
// @Summary List datasets
// @Description Get all uploaded datasets with their row counts, newest first
// @Tags datasets
// @Produce json
// @Success 200 {array} model.Dataset "List of datasets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [get]
func ListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets, err := store.ListDatasets()
	if err != nil {
		writeError(w, err)
		return
	}
	if datasets == nil {
		datasets = []model.Dataset{}
	}
	writeJSON(w, http.StatusOK, datasets)
}

// GetDataset retrieves a dataset with a preview of its rows
// @Summary Get dataset
// @Description Retrieve one dataset and up to the first 100 of its rows
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset with data preview"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [get]
func GetDataset(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r.URL.Path, "/api/v1/datasets/", "")
	if id == "" {
		writeError(w, &model.ValidationError{Message: "dataset ID is required"})
		return
	}

	dataset, err := store.GetDataset(id)
	if err != nil {
		writeError(w, err)
		return
	}

	rows, err := store.GetDatasetRows(id, maxPreviewRows)
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []model.GenericRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset": dataset,
		"data":    rows,
	})
}

// GetDatasetSummary retrieves row count and columns of a dataset
// @Summary Get dataset summary
// @Description Retrieve the total row count and column names of a dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset summary"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/summary [get]
func GetDatasetSummary(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r.URL.Path, "/api/v1/datasets/", "/summary")
	if id == "" {
		writeError(w, &model.ValidationError{Message: "dataset ID is required"})
		return
	}

	dataset, err := store.GetDataset(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalRows": dataset.RowCount,
		"columns":   dataset.Columns,
	})
}

// DeleteDataset removes a dataset with its rows and KPIs
// @Summary Delete dataset
// @Description Delete a dataset; its rows and KPIs are removed with it
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [delete]
func DeleteDataset(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r.URL.Path, "/api/v1/datasets/", "")
	if id == "" {
		writeError(w, &model.ValidationError{Message: "dataset ID is required"})
		return
	}

	if err := store.DeleteDataset(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Dataset deleted successfully",
	})
}
