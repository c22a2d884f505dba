package models

// Common constants used across the application
const (
	// ResponseVersion is the envelope version of successful responses
	ResponseVersion = 2
	// CurrencySymbol prefixes collection amounts in rendered output
	CurrencySymbol = "$"
)
