package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/pkg/utils"
)

// ParseXLSX reads the first sheet of a workbook into a table. The first
// row is the header; trailing empty cells of short rows stay absent, the
// same as ragged CSV rows.
func ParseXLSX(r io.Reader) (*model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &model.Table{Columns: []string{}}, nil
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return &model.Table{Columns: []string{}}, nil
	}

	columns := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		columns[i] = cleanHeader(h)
	}

	var rows []model.GenericRecord
	for _, record := range cells[1:] {
		row := make(model.GenericRecord, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = utils.ParseValue(record[i])
			}
		}
		rows = append(rows, row)
	}

	return &model.Table{Columns: columns, Rows: rows}, nil
}
