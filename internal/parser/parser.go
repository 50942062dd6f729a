// Package parser turns uploaded CSV and Excel files into tables of
// generic records. Only the first sheet of a workbook is read; column
// order is taken from the header row and preserved on the table.
package parser

import (
	"io"
	"path/filepath"
	"strings"

	"go-kpi-analyser/internal/model"
)

// cleanHeader trims whitespace and strips stray quotes from a header cell.
func cleanHeader(h string) string {
	clean := strings.TrimSpace(h)
	return strings.ReplaceAll(clean, `"`, "")
}

// Parse dispatches on the file extension. Unknown extensions are a
// validation error at the boundary.
func Parse(filename string, r io.Reader) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".tsv":
		return ParseTSV(r)
	case ".xlsx", ".xls":
		return ParseXLSX(r)
	default:
		return nil, &model.ValidationError{Message: "invalid file format: only .csv, .tsv, .xlsx and .xls are supported"}
	}
}
