package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := writeWorkbook(t, [][]interface{}{
		{" order_id ", "price", "status"},
		{1, 10.5, "done"},
		{2, 20, "open"},
	})

	table, err := Parse("data.xlsx", buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"order_id", "price", "status"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 1, table.Rows[0]["order_id"])
	assert.Equal(t, 10.5, table.Rows[0]["price"])
	assert.Equal(t, "done", table.Rows[0]["status"])
	assert.Equal(t, 20, table.Rows[1]["price"])
}

func TestParseXLSXShortRows(t *testing.T) {
	buf := writeWorkbook(t, [][]interface{}{
		{"a", "b", "c"},
		{1, 2},
		{4, 5, 6},
	})

	table, err := ParseXLSX(buf)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	_, present := table.Rows[0]["c"]
	assert.False(t, present, "short rows leave trailing cells absent")
	assert.Equal(t, 6, table.Rows[1]["c"])
}

func TestParseXLSXEmptyWorkbook(t *testing.T) {
	buf := writeWorkbook(t, nil)

	table, err := ParseXLSX(buf)
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestParseXLSXRejectsGarbage(t *testing.T) {
	_, err := ParseXLSX(bytes.NewReader([]byte("not a workbook")))
	require.Error(t, err)
}
