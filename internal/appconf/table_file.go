package appconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fellowdash.org/internal/percentile"
)

type tableFile struct {
	Rows []percentile.Row `yaml:"rows"`
}

// LoadTableFile reads a replacement reference table from a YAML (or JSON)
// file of the form:
//
//	rows:
//	  - {month: 1, p10: 0, p25: 0, p50: 243.87, p75: 2049.31, p90: 2871.238}
//
// The table must pass percentile.Table.Validate.
func LoadTableFile(path string) (*percentile.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table file: %w", err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing table file %s: %w", path, err)
	}
	if len(file.Rows) == 0 {
		return nil, fmt.Errorf("table file %s has no rows", path)
	}

	table := percentile.NewTable(file.Rows)
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table file %s: %w", path, err)
	}
	return table, nil
}
