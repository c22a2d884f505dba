package percentile

import (
	"fmt"
	"math"
)

// Row holds the collection thresholds for one fellowship month.
type Row struct {
	Month int     `json:"month" yaml:"month"`
	P10   float64 `json:"p10" yaml:"p10"`
	P25   float64 `json:"p25" yaml:"p25"`
	P50   float64 `json:"p50" yaml:"p50"`
	P75   float64 `json:"p75" yaml:"p75"`
	P90   float64 `json:"p90" yaml:"p90"`
}

// Threshold returns the row's value for a band. BandP0 has no threshold and
// reports ok=false.
func (r Row) Threshold(b Band) (float64, bool) {
	switch b {
	case BandP10:
		return r.P10, true
	case BandP25:
		return r.P25, true
	case BandP50:
		return r.P50, true
	case BandP75:
		return r.P75, true
	case BandP90:
		return r.P90, true
	default:
		return 0, false
	}
}

// Thresholds returns the five breakpoints in band order.
func (r Row) Thresholds() [5]float64 {
	return [5]float64{r.P10, r.P25, r.P50, r.P75, r.P90}
}

var referenceRows = [...]Row{
	{Month: 1, P10: 0, P25: 0, P50: 243.87, P75: 2049.31, P90: 2871.238},
	{Month: 2, P10: 2776.037, P25: 4978.2075, P50: 7562.965, P75: 12953.015, P90: 14422.303},
	{Month: 3, P10: 11202.374, P25: 13689.055, P50: 18393.82, P75: 21512.3275, P90: 24093.88},
	{Month: 4, P10: 13549.61, P25: 18025.34, P50: 23374.07, P75: 27968.61, P90: 32562.358},
	{Month: 5, P10: 19085.83, P25: 23503.0175, P50: 27142.26, P75: 32186.3275, P90: 35985.399},
	{Month: 6, P10: 24859.675, P25: 27071.215, P50: 32423.515, P75: 35000.2525, P90: 38910.38},
	{Month: 7, P10: 25195.28, P25: 29208.02, P50: 33522.465, P75: 38845.98, P90: 42963.32},
	{Month: 8, P10: 26549.521, P25: 30688.22, P50: 33477.645, P75: 38924.8375, P90: 43240.285},
	{Month: 9, P10: 30254.91, P25: 33567.065, P50: 38551.74, P75: 45185.775, P90: 48425.45},
}

// Default is the reference table the dashboard classifies against.
var Default = NewTable(referenceRows[:])

// Table is an immutable set of percentile rows keyed by month.
type Table struct {
	rows []Row
}

// NewTable copies rows into a new table. Rows are kept in the given order.
func NewTable(rows []Row) *Table {
	copied := make([]Row, len(rows))
	copy(copied, rows)
	return &Table{rows: copied}
}

// Rows returns a copy of the table rows.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Months returns the months present in the table, in table order.
func (t *Table) Months() []int {
	months := make([]int, 0, len(t.rows))
	for _, r := range t.rows {
		months = append(months, r.Month)
	}
	return months
}

// Row looks up the row for a month.
func (t *Table) Row(month int) (Row, error) {
	for _, r := range t.rows {
		if r.Month == month {
			return r, nil
		}
	}
	return Row{}, &MonthNotFoundError{Month: month}
}

// Validate checks that months are unique and ascending and that every row
// is finite and non-decreasing across bands. The early-exit walk in Classify relies on
// the second property.
func (t *Table) Validate() error {
	for i, r := range t.rows {
		if i > 0 && r.Month <= t.rows[i-1].Month {
			return fmt.Errorf("month %d out of order after month %d", r.Month, t.rows[i-1].Month)
		}
		thresholds := r.Thresholds()
		for j := range thresholds {
			if math.IsNaN(thresholds[j]) || math.IsInf(thresholds[j], 0) {
				return fmt.Errorf("month %d: %s threshold is not a finite number", r.Month, thresholdBands[j])
			}
			if thresholds[j] < 0 {
				return fmt.Errorf("month %d: %s threshold is negative", r.Month, thresholdBands[j])
			}
			if j > 0 && thresholds[j] < thresholds[j-1] {
				return fmt.Errorf("month %d: %s threshold %.4f is below %s threshold %.4f",
					r.Month, thresholdBands[j], thresholds[j], thresholdBands[j-1], thresholds[j-1])
			}
		}
	}
	return nil
}
