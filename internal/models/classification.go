package models

import "fellowdash.org/internal/percentile"

// ClassificationModel is the API entry for one classification
type ClassificationModel struct {
	Month           int                        `json:"month"`
	Amount          float64                    `json:"amount"`
	Percentile      string                     `json:"percentile"`
	PercentileLabel string                     `json:"percentileLabel"`
	RiskCategory    string                     `json:"riskCategory"`
	Color           string                     `json:"color"`
	Glyph           string                     `json:"glyph"`
	Advisory        percentile.AdvisoryMessage `json:"advisory"`
}

// NewClassificationModel converts a classifier result for the API
func NewClassificationModel(result percentile.Result) ClassificationModel {
	return ClassificationModel{
		Month:           result.Month,
		Amount:          result.Amount,
		Percentile:      result.Band.String(),
		PercentileLabel: result.Band.Label(),
		RiskCategory:    string(result.Category),
		Color:           result.Category.Color(),
		Glyph:           result.Category.Glyph(),
		Advisory:        result.Advisory(),
	}
}

// PercentileRowModel is one row of the reference table
type PercentileRowModel struct {
	Month int     `json:"month"`
	P10   float64 `json:"p10"`
	P25   float64 `json:"p25"`
	P50   float64 `json:"p50"`
	P75   float64 `json:"p75"`
	P90   float64 `json:"p90"`
}

// NewPercentileRowModel converts a reference row for the API
func NewPercentileRowModel(row percentile.Row) PercentileRowModel {
	return PercentileRowModel{
		Month: row.Month,
		P10:   row.P10,
		P25:   row.P25,
		P50:   row.P50,
		P75:   row.P75,
		P90:   row.P90,
	}
}

// NewPercentileTableModel converts every row of a table
func NewPercentileTableModel(table *percentile.Table) []PercentileRowModel {
	rows := table.Rows()
	models := make([]PercentileRowModel, 0, len(rows))
	for _, row := range rows {
		models = append(models, NewPercentileRowModel(row))
	}
	return models
}
