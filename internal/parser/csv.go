package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/pkg/utils"
)

// ParseCSV reads an entire CSV stream into a table. Ragged rows are
// tolerated: short rows simply leave the trailing cells absent.
func ParseCSV(r io.Reader) (*model.Table, error) {
	return parseDelimited(r, ',')
}

// ParseTSV is ParseCSV with a tab delimiter.
func ParseTSV(r io.Reader) (*model.Table, error) {
	return parseDelimited(r, '\t')
}

func parseDelimited(r io.Reader, comma rune) (*model.Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = comma
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err == io.EOF {
		return &model.Table{Columns: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = cleanHeader(h)
	}

	var rows []model.GenericRecord
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

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
