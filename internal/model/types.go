package model

import "time"

// GenericRecord is a schema-agnostic map for one row of uploaded data
type GenericRecord map[string]interface{}

// Table is an ordered view over uploaded rows. Go maps carry no key order,
// so the column order from the source header travels with the rows; every
// "first column" rule in the analyzer relies on it.
type Table struct {
	Columns []string        `json:"columns"`
	Rows    []GenericRecord `json:"rows"`
}

// ColumnType is the inferred semantic type of a column.
type ColumnType string

const (
	TypeEmpty       ColumnType = "empty"
	TypeIdentifier  ColumnType = "identifier"
	TypeCurrency    ColumnType = "currency"
	TypeQuantity    ColumnType = "quantity"
	TypeNumeric     ColumnType = "numeric"
	TypeDate        ColumnType = "date"
	TypeCategorical ColumnType = "categorical"
	TypeText        ColumnType = "text"
)

// AggType is the aggregation applied by a KPI.
type AggType string

const (
	AggSum           AggType = "SUM"
	AggAvg           AggType = "AVG"
	AggCount         AggType = "COUNT"
	AggMin           AggType = "MIN"
	AggMax           AggType = "MAX"
	AggPercentChange AggType = "PERCENT_CHANGE"
)

// ValidAggType reports whether t is one of the supported aggregation types.
func ValidAggType(t AggType) bool {
	switch t {
	case AggSum, AggAvg, AggCount, AggMin, AggMax, AggPercentChange:
		return true
	}
	return false
}

// ColumnStats holds per-column statistics. The numeric fields are only set
// for numeric-like columns with at least one parseable value.
type ColumnStats struct {
	Type        ColumnType `json:"type"`
	Count       int        `json:"count"`
	NullCount   int        `json:"nullCount"`
	UniqueCount int        `json:"uniqueCount"`
	Min         *float64   `json:"min,omitempty"`
	Max         *float64   `json:"max,omitempty"`
	Avg         *float64   `json:"avg,omitempty"`
	Sum         *float64   `json:"sum,omitempty"`
}

// Analysis is the immutable result of analyzing a dataset.
type Analysis struct {
	RowCount        int                       `json:"rowCount"`
	ColumnCount     int                       `json:"columnCount"`
	Columns         []string                  `json:"columns"`
	ColumnTypes     map[string]ColumnType     `json:"columnTypes"`
	DetectedDomains []string                  `json:"detectedDomains"`
	Statistics      map[string]*ColumnStats   `json:"statistics"`
}

// Recommendation is a candidate KPI proposed for a dataset, not yet persisted.
type Recommendation struct {
	Name        string  `json:"name"`
	Type        AggType `json:"type"`
	Field       string  `json:"field"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	Reasoning   string  `json:"reasoning"`
}

// Dataset describes one uploaded file.
type Dataset struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FileName   string    `json:"fileName"`
	Columns    []string  `json:"columns"`
	RowCount   int       `json:"rowCount"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// KPI is a persisted aggregation metric tracked against a dataset.
type KPI struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Type           AggType                `json:"type"`
	Field          string                 `json:"field"`
	Filters        map[string]interface{} `json:"filters"`
	DatasetID      string                 `json:"datasetId"`
	DatasetName    string                 `json:"datasetName,omitempty"`
	CurrentValue   *float64               `json:"currentValue,omitempty"`
	LastCalculated *time.Time             `json:"lastCalculated,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
}
