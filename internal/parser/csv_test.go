package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kpi-analyser/internal/model"
)

func TestParseCSV(t *testing.T) {
	input := `"order_id", price ,status
1,10.5,done
2,20,open
`
	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"order_id", "price", "status"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 1, table.Rows[0]["order_id"])
	assert.Equal(t, 10.5, table.Rows[0]["price"])
	assert.Equal(t, "done", table.Rows[0]["status"])
	assert.Equal(t, 20, table.Rows[1]["price"])
}

func TestParseCSVRaggedRows(t *testing.T) {
	input := "a,b,c\n1,2\n4,5,6\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	_, present := table.Rows[0]["c"]
	assert.False(t, present, "short rows leave trailing cells absent")
	assert.Equal(t, 6, table.Rows[1]["c"])
}

func TestParseTSV(t *testing.T) {
	input := "a\tb\tc\n1\t2.5\tdone\n"

	table, err := ParseTSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, 1, table.Rows[0]["a"])
	assert.Equal(t, 2.5, table.Rows[0]["b"])
	assert.Equal(t, "done", table.Rows[0]["c"])
}

func TestParseDispatchesTSV(t *testing.T) {
	table, err := Parse("data.tsv", strings.NewReader("a\tb\tc\n1\t2\t3\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, table.Columns, "tab-separated headers must split into columns")
	require.Len(t, table.Rows, 1)
	assert.Equal(t, 3, table.Rows[0]["c"])
}

func TestParseCSVEmptyInput(t *testing.T) {
	table, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestParseUnknownExtension(t *testing.T) {
	_, err := Parse("report.pdf", strings.NewReader("x"))
	require.Error(t, err)

	var vErr *model.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestParseDispatchesCSV(t *testing.T) {
	table, err := Parse("data.CSV", strings.NewReader("x,y\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, table.Columns)
	assert.Len(t, table.Rows, 1)
}
