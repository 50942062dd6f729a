package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/internal/parser"
	"go-kpi-analyser/internal/store"
)

// UploadFile ingests a CSV or Excel file as a new dataset
// @Summary Upload a dataset
// @Description Parse an uploaded CSV/Excel file and store it as a dataset with all of its rows
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Dataset file (.csv, .tsv, .xlsx, .xls)"
// @Param datasetName formData string false "Dataset display name"
// @Success 200 {object} map[string]interface{} "Upload summary"
// @Failure 400 {object} map[string]interface{} "Missing file or invalid format"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /upload [post]
func UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, &model.ValidationError{Message: fmt.Sprintf("file too large: the upload limit is %d bytes", maxErr.Limit)})
			return
		}
		writeError(w, &model.ValidationError{Message: "no file uploaded"})
		return
	}
	defer file.Close()

	datasetName := r.FormValue("datasetName")
	if datasetName == "" {
		datasetName = "Untitled Dataset"
	}

	table, err := parser.Parse(header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(table.Rows) == 0 {
		writeError(w, &model.ValidationError{Message: "file is empty or could not be parsed"})
		return
	}

	datasetID := uuid.New().String()
	if err := store.SaveDatasetWithRows(datasetID, datasetName, header.Filename, table.Columns, table.Rows); err != nil {
		writeError(w, err)
		return
	}

	fmt.Printf("✅ Uploaded %d rows for dataset %s\n", len(table.Rows), datasetID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "File uploaded successfully",
		"datasetId": datasetID,
		"rowCount":  len(table.Rows),
		"columns":   table.Columns,
	})
}
