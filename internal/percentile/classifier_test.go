package percentile

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceTableIsMonotone(t *testing.T) {
	require.NoError(t, Default.Validate())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Default.Months())
}

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		name     string
		month    int
		amount   float64
		band     Band
		category Category
	}{
		{"month 3 between p25 and p50", 3, 15000, BandP25, CategoryWatch},
		{"month 9 above p90", 9, 50000, BandP90, CategoryOnTrack},
		{"month 1 zero ties p25 threshold of zero", 1, 0, BandP25, CategoryWatch},
		{"month 2 below p10", 2, 100, BandP0, CategoryCritical},
		{"month 2 exactly p10", 2, 2776.037, BandP10, CategoryHighRisk},
		{"month 5 exactly p50", 5, 27142.26, BandP50, CategoryWatch},
		{"month 6 between p75 and p90", 6, 36000, BandP75, CategoryOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Classify(tt.month, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.band, result.Band)
			assert.Equal(t, tt.category, result.Category)
			assert.Equal(t, tt.month, result.Month)
			assert.Equal(t, tt.amount, result.Amount)
		})
	}
}

func TestClassifyMonthOneZeroAmountIsNotP0(t *testing.T) {
	result, err := Classify(1, 0)
	require.NoError(t, err)
	assert.NotEqual(t, BandP0, result.Band)
	assert.GreaterOrEqual(t, result.Band, BandP10)
}

func TestClassifyP90TieGoesToTopBand(t *testing.T) {
	for _, row := range Default.Rows() {
		result, err := Classify(row.Month, row.P90)
		require.NoError(t, err)
		assert.Equal(t, BandP90, result.Band, "month %d", row.Month)
		assert.Equal(t, CategoryOnTrack, result.Category, "month %d", row.Month)
	}
}

func TestClassifyBelowP10IsCritical(t *testing.T) {
	for _, row := range Default.Rows() {
		if row.P10 == 0 {
			continue
		}
		amount := math.Nextafter(row.P10, math.Inf(-1))
		result, err := Classify(row.Month, amount)
		require.NoError(t, err)
		assert.Equal(t, BandP0, result.Band, "month %d", row.Month)
		assert.Equal(t, CategoryCritical, result.Category, "month %d", row.Month)
	}
}

func TestClassifyEveryThresholdLandsOnItsBand(t *testing.T) {
	for _, row := range Default.Rows() {
		for _, b := range thresholdBands {
			threshold, ok := row.Threshold(b)
			require.True(t, ok)
			result, err := Classify(row.Month, threshold)
			require.NoError(t, err)
			// Equal neighbouring thresholds (month 1) promote to the higher band.
			assert.GreaterOrEqual(t, result.Band, b, "month %d band %s", row.Month, b)
		}
	}
}

func TestClassifyIsMonotoneInAmount(t *testing.T) {
	for _, month := range Default.Months() {
		previous := BandP0
		for amount := 0.0; amount <= 55000; amount += 250 {
			result, err := Classify(month, amount)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.Band, previous, "month %d amount %.2f", month, amount)
			previous = result.Band
		}
	}
}

func TestClassifyUnknownMonth(t *testing.T) {
	for _, month := range []int{0, 10, -1, 100} {
		_, err := Classify(month, 1000)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMonthNotFound))

		var notFound *MonthNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, month, notFound.Month)
	}
}

func TestClassifyUnvalidatedAmounts(t *testing.T) {
	t.Run("negative amount lands in p0", func(t *testing.T) {
		result, err := Classify(2, -5)
		require.NoError(t, err)
		assert.Equal(t, BandP0, result.Band)
	})

	t.Run("NaN never meets a threshold", func(t *testing.T) {
		result, err := Classify(1, math.NaN())
		require.NoError(t, err)
		assert.Equal(t, BandP0, result.Band)
	})

	t.Run("infinite amount is top band", func(t *testing.T) {
		result, err := Classify(4, math.Inf(1))
		require.NoError(t, err)
		assert.Equal(t, BandP90, result.Band)
	})
}

func TestClassifyBinaryAgreesWithLinearWalk(t *testing.T) {
	for _, row := range Default.Rows() {
		amounts := []float64{0, 1e9, math.NaN()}
		for _, threshold := range row.Thresholds() {
			amounts = append(amounts, threshold, threshold-0.01, threshold+0.01)
		}

		for _, amount := range amounts {
			linear, err := Default.Classify(row.Month, amount)
			require.NoError(t, err)
			binary, err := Default.ClassifyBinary(row.Month, amount)
			require.NoError(t, err)
			assert.Equal(t, linear.Band, binary.Band, "month %d amount %v", row.Month, amount)
		}
	}

	_, err := Default.ClassifyBinary(10, 1)
	assert.ErrorIs(t, err, ErrMonthNotFound)
}

func TestRowsReturnsCopy(t *testing.T) {
	rows := Default.Rows()
	rows[2].P10 = 1e9

	result, err := Classify(3, 15000)
	require.NoError(t, err)
	assert.Equal(t, BandP25, result.Band)
}

func TestValidateRejectsBadTables(t *testing.T) {
	t.Run("non monotone row", func(t *testing.T) {
		table := NewTable([]Row{{Month: 1, P10: 10, P25: 5, P50: 20, P75: 30, P90: 40}})
		err := table.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "month 1")
		assert.Contains(t, err.Error(), "p25")
	})

	t.Run("months out of order", func(t *testing.T) {
		table := NewTable([]Row{{Month: 2}, {Month: 1}})
		assert.Error(t, table.Validate())
	})

	t.Run("duplicate month", func(t *testing.T) {
		table := NewTable([]Row{{Month: 1}, {Month: 1}})
		assert.Error(t, table.Validate())
	})

	t.Run("negative threshold", func(t *testing.T) {
		table := NewTable([]Row{{Month: 1, P10: -1}})
		assert.Error(t, table.Validate())
	})

	t.Run("NaN threshold", func(t *testing.T) {
		table := NewTable([]Row{{Month: 1, P10: 1, P25: math.NaN(), P50: 3, P75: 4, P90: 5}})
		err := table.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "p25 threshold is not a finite number")
	})

	t.Run("infinite threshold", func(t *testing.T) {
		table := NewTable([]Row{{Month: 1, P10: 1, P25: 2, P50: 3, P75: 4, P90: math.Inf(1)}})
		assert.Error(t, table.Validate())
	})
}

func TestEarlyExitStopsAtFirstFailure(t *testing.T) {
	// A deliberately broken row: p25 fails, p50 would pass.
	table := NewTable([]Row{{Month: 1, P10: 10, P25: 100, P50: 20, P75: 30, P90: 40}})
	result, err := table.Classify(1, 50)
	require.NoError(t, err)
	assert.Equal(t, BandP10, result.Band)
}
