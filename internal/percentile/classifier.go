// Package percentile classifies a fellow's collection amount against the
// historical percentile thresholds for their fellowship month.
package percentile

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMonthNotFound is matched by errors.Is when a month has no reference row.
var ErrMonthNotFound = errors.New("month not found")

// MonthNotFoundError reports the month that had no reference row.
type MonthNotFoundError struct {
	Month int
}

func (e *MonthNotFoundError) Error() string {
	return fmt.Sprintf("no percentile reference row for month %d", e.Month)
}

func (e *MonthNotFoundError) Is(target error) bool {
	return target == ErrMonthNotFound
}

// Result is the outcome of a single classification.
type Result struct {
	Month    int      `json:"month"`
	Amount   float64  `json:"amount"`
	Band     Band     `json:"percentile"`
	Category Category `json:"riskCategory"`
}

// Advisory returns the advisory text for the result's category.
func (r Result) Advisory() AdvisoryMessage {
	return Advisory(r.Category)
}

// Classify finds the highest band whose threshold is <= amount for the
// month, stopping at the first band that is not met. Ties go to the higher
// band. Amounts are not range checked here: negative amounts land in BandP0.
func (t *Table) Classify(month int, amount float64) (Result, error) {
	row, err := t.Row(month)
	if err != nil {
		return Result{}, err
	}

	best := BandP0
	for _, b := range thresholdBands {
		threshold, _ := row.Threshold(b)
		if !(threshold <= amount) {
			break
		}
		best = b
	}

	return Result{Month: month, Amount: amount, Band: best, Category: CategoryFor(best)}, nil
}

// ClassifyBinary is Classify implemented as a binary search over the row's
// breakpoints. It agrees with Classify whenever the row is monotone.
func (t *Table) ClassifyBinary(month int, amount float64) (Result, error) {
	row, err := t.Row(month)
	if err != nil {
		return Result{}, err
	}

	thresholds := row.Thresholds()
	// First index whose threshold is not met.
	n := sort.Search(len(thresholds), func(i int) bool {
		return !(thresholds[i] <= amount)
	})

	best := Band(n)
	return Result{Month: month, Amount: amount, Band: best, Category: CategoryFor(best)}, nil
}

// Classify classifies against the Default table.
func Classify(month int, amount float64) (Result, error) {
	return Default.Classify(month, amount)
}
