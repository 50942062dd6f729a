// Package store persists datasets, their raw rows, and KPI definitions in
// sqlite. Rows and filter maps are stored as JSON text columns.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-kpi-analyser/internal/model"
)

var db *sql.DB

// InitDB opens the sqlite database and creates tables if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return err
	}
	// sqlite allows one writer; a single pooled connection also keeps
	// :memory: databases coherent across queries
	db.SetMaxOpenConns(1)

	datasetTable := `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT,
		file_name TEXT,
		columns TEXT,
		uploaded_at DATETIME
	);
	`
	rowTable := `
	CREATE TABLE IF NOT EXISTS data_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT,
		data TEXT,
		FOREIGN KEY (dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
	);
	`
	kpiTable := `
	CREATE TABLE IF NOT EXISTS kpis (
		id TEXT PRIMARY KEY,
		dataset_id TEXT,
		name TEXT,
		type TEXT,
		field TEXT,
		filters TEXT,
		current_value REAL,
		last_calculated DATETIME,
		created_at DATETIME,
		FOREIGN KEY (dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
	);
	`

	for _, stmt := range []string{datasetTable, rowTable, kpiTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// SaveDatasetWithRows stores a dataset and all of its rows in a single
// transaction, so a failed upload never leaves a partial dataset behind.
func SaveDatasetWithRows(id, name, fileName string, columns []string, rows []model.GenericRecord) error {
	columnsJSON, err := json.Marshal(columns)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if _, err := tx.Exec(
		`INSERT INTO datasets (id, name, file_name, columns, uploaded_at) VALUES (?, ?, ?, ?, ?)`,
		id, name, fileName, string(columnsJSON), now,
	); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO data_rows (dataset_id, data) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		rowJSON, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(id, string(rowJSON)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListDatasets returns all datasets with their row counts, newest first.
func ListDatasets() ([]model.Dataset, error) {
	rows, err := db.Query(`
		SELECT d.id, d.name, d.file_name, d.columns, d.uploaded_at, COUNT(dr.id)
		FROM datasets d
		LEFT JOIN data_rows dr ON d.id = dr.dataset_id
		GROUP BY d.id
		ORDER BY d.uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []model.Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, *d)
	}
	return datasets, rows.Err()
}

// GetDataset fetches one dataset with its row count.
func GetDataset(id string) (*model.Dataset, error) {
	row := db.QueryRow(`
		SELECT d.id, d.name, d.file_name, d.columns, d.uploaded_at, COUNT(dr.id)
		FROM datasets d
		LEFT JOIN data_rows dr ON d.id = dr.dataset_id
		WHERE d.id = ?
		GROUP BY d.id`, id)

	d, err := scanDataset(row)
	if err == sql.ErrNoRows {
		return nil, &model.NotFoundError{Resource: "dataset", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDataset(s rowScanner) (*model.Dataset, error) {
	var d model.Dataset
	var columnsJSON string
	if err := s.Scan(&d.ID, &d.Name, &d.FileName, &columnsJSON, &d.UploadedAt, &d.RowCount); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(columnsJSON), &d.Columns); err != nil {
		return nil, fmt.Errorf("corrupt columns for dataset %s: %w", d.ID, err)
	}
	return &d, nil
}

// GetDatasetRows loads all rows of a dataset in insertion order. limit <= 0
// means no limit.
func GetDatasetRows(datasetID string, limit int) ([]model.GenericRecord, error) {
	query := `SELECT data FROM data_rows WHERE dataset_id = ? ORDER BY id`
	args := []interface{}{datasetID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.GenericRecord
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec model.GenericRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteDataset removes a dataset; its rows and KPIs cascade.
func DeleteDataset(id string) error {
	res, err := db.Exec(`DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &model.NotFoundError{Resource: "dataset", ID: id}
	}
	return nil
}

// SaveKPI inserts one KPI definition.
func SaveKPI(k *model.KPI) error {
	filtersJSON, err := json.Marshal(orEmptyFilters(k.Filters))
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO kpis (id, dataset_id, name, type, field, filters, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		k.ID, k.DatasetID, k.Name, string(k.Type), k.Field, string(filtersJSON), k.CreatedAt,
	)
	return err
}

// SaveKPIs inserts a batch of KPIs in one transaction; applying a set of
// recommendations is all-or-nothing.
func SaveKPIs(kpis []model.KPI) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO kpis (id, dataset_id, name, type, field, filters, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, k := range kpis {
		filtersJSON, err := json.Marshal(orEmptyFilters(k.Filters))
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(k.ID, k.DatasetID, k.Name, string(k.Type), k.Field, string(filtersJSON), k.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListKPIs returns KPIs joined with their dataset names, newest first.
// An empty datasetID returns everything.
func ListKPIs(datasetID string) ([]model.KPI, error) {
	query := `
		SELECT k.id, k.dataset_id, k.name, k.type, k.field, k.filters, k.current_value, k.last_calculated, k.created_at, COALESCE(d.name, '')
		FROM kpis k
		LEFT JOIN datasets d ON k.dataset_id = d.id`
	var args []interface{}
	if datasetID != "" {
		query += ` WHERE k.dataset_id = ?`
		args = append(args, datasetID)
	}
	query += ` ORDER BY k.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kpis []model.KPI
	for rows.Next() {
		k, err := scanKPI(rows)
		if err != nil {
			return nil, err
		}
		kpis = append(kpis, *k)
	}
	return kpis, rows.Err()
}

// GetKPI fetches one KPI with its dataset name.
func GetKPI(id string) (*model.KPI, error) {
	row := db.QueryRow(`
		SELECT k.id, k.dataset_id, k.name, k.type, k.field, k.filters, k.current_value, k.last_calculated, k.created_at, COALESCE(d.name, '')
		FROM kpis k
		LEFT JOIN datasets d ON k.dataset_id = d.id
		WHERE k.id = ?`, id)

	k, err := scanKPI(row)
	if err == sql.ErrNoRows {
		return nil, &model.NotFoundError{Resource: "KPI", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return k, nil
}

func scanKPI(s rowScanner) (*model.KPI, error) {
	var k model.KPI
	var aggType, filtersJSON string
	var currentValue sql.NullFloat64
	var lastCalculated sql.NullTime

	if err := s.Scan(&k.ID, &k.DatasetID, &k.Name, &aggType, &k.Field, &filtersJSON, &currentValue, &lastCalculated, &k.CreatedAt, &k.DatasetName); err != nil {
		return nil, err
	}

	k.Type = model.AggType(aggType)
	if err := json.Unmarshal([]byte(filtersJSON), &k.Filters); err != nil {
		return nil, fmt.Errorf("corrupt filters for KPI %s: %w", k.ID, err)
	}
	if currentValue.Valid {
		k.CurrentValue = &currentValue.Float64
	}
	if lastCalculated.Valid {
		k.LastCalculated = &lastCalculated.Time
	}
	return &k, nil
}

// KPIUpdate carries the optional fields of a partial KPI update; nil
// fields keep their stored value.
type KPIUpdate struct {
	Name    *string
	Type    *model.AggType
	Field   *string
	Filters map[string]interface{}
}

// UpdateKPI applies a partial update and returns the updated record.
func UpdateKPI(id string, upd KPIUpdate) (*model.KPI, error) {
	var filtersJSON interface{}
	if upd.Filters != nil {
		b, err := json.Marshal(upd.Filters)
		if err != nil {
			return nil, err
		}
		filtersJSON = string(b)
	}

	var aggType interface{}
	if upd.Type != nil {
		aggType = string(*upd.Type)
	}

	res, err := db.Exec(`
		UPDATE kpis SET
			name = COALESCE(?, name),
			type = COALESCE(?, type),
			field = COALESCE(?, field),
			filters = COALESCE(?, filters)
		WHERE id = ?`,
		orNil(upd.Name), aggType, orNil(upd.Field), filtersJSON, id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &model.NotFoundError{Resource: "KPI", ID: id}
	}
	return GetKPI(id)
}

// UpdateKPIValue stores a freshly calculated value and its timestamp.
func UpdateKPIValue(id string, value float64, calculatedAt time.Time) error {
	_, err := db.Exec(`UPDATE kpis SET current_value = ?, last_calculated = ? WHERE id = ?`, value, calculatedAt, id)
	return err
}

// DeleteKPI removes one KPI definition.
func DeleteKPI(id string) error {
	res, err := db.Exec(`DELETE FROM kpis WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &model.NotFoundError{Resource: "KPI", ID: id}
	}
	return nil
}

func orEmptyFilters(filters map[string]interface{}) map[string]interface{} {
	if filters == nil {
		return map[string]interface{}{}
	}
	return filters
}

func orNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
