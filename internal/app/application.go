package app

import (
	"log/slog"

	"fellowdash.org/internal/appconf"
	"fellowdash.org/internal/percentile"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	// Table is the reference table used for classification. Nil means
	// percentile.Default.
	Table *percentile.Table
}

// PercentileTable returns the table handlers classify against.
func (app *Application) PercentileTable() *percentile.Table {
	if app.Table == nil {
		return percentile.Default
	}
	return app.Table
}

// Classify runs a classification and logs the outcome.
func (app *Application) Classify(month int, amount float64) (percentile.Result, error) {
	result, err := app.PercentileTable().Classify(month, amount)
	if app.Logger != nil {
		if err != nil {
			app.Logger.Warn("classification failed",
				slog.Int("month", month),
				slog.Float64("amount", amount),
				slog.String("error", err.Error()))
		} else {
			app.Logger.Debug("classified collection",
				slog.Int("month", month),
				slog.Float64("amount", amount),
				slog.String("percentile", result.Band.String()),
				slog.String("risk_category", string(result.Category)))
		}
	}
	return result, err
}
