package appconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fellowdash.org/internal/percentile"
)

func writeTableFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadTableFile(t *testing.T) {
	path := writeTableFile(t, `rows:
  - {month: 1, p10: 10, p25: 20, p50: 30, p75: 40, p90: 50}
  - {month: 2, p10: 15, p25: 25, p50: 35, p75: 45, p90: 55}
`)

	table, err := LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, table.Months())

	result, err := table.Classify(2, 36)
	require.NoError(t, err)
	assert.Equal(t, percentile.BandP50, result.Band)
}

func TestLoadTableFileAcceptsJSON(t *testing.T) {
	path := writeTableFile(t, `{"rows": [{"month": 4, "p10": 1, "p25": 2, "p50": 3, "p75": 4, "p90": 5}]}`)

	table, err := LoadTableFile(path)
	require.NoError(t, err)

	row, err := table.Row(4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, row.P90)
}

func TestLoadTableFileErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		message  string
	}{
		{"empty", "rows: []\n", "has no rows"},
		{"not yaml", "rows: [\n", "parsing table file"},
		{"not monotone", "rows:\n  - {month: 1, p10: 50, p25: 20, p50: 30, p75: 40, p90: 50}\n", "invalid table file"},
		{"NaN threshold", "rows:\n  - {month: 1, p10: 1, p25: .nan, p50: 3, p75: 4, p90: 5}\n", "not a finite number"},
		{"infinite threshold", "rows:\n  - {month: 1, p10: 1, p25: 2, p50: 3, p75: 4, p90: .inf}\n", "not a finite number"},
		{"months out of order", "rows:\n  - {month: 2}\n  - {month: 1}\n", "out of order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTableFile(writeTableFile(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	_, err := LoadTableFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
