package models

import "github.com/shopspring/decimal"

// Sample is one point of a raw or smoothed numeric series. Valid=false
// marks a position with no value, e.g. not enough history for a full
// averaging window.
type Sample struct {
	Value float64
	Valid bool
}

// DayCount is one daily bucket of the sales series.
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// DailySeries is an ascending-by-date sequence of daily order counts.
// Each date appears at most once.
type DailySeries []DayCount

// Counts returns the positional numeric view of the series.
func (s DailySeries) Counts() []float64 {
	out := make([]float64, len(s))
	for i, d := range s {
		out[i] = float64(d.Count)
	}
	return out
}

// Summary aggregates the fetched orders into headline figures.
type Summary struct {
	Orders     int
	Revenue    decimal.Decimal
	Currency   string
	MeanPerDay float64
	PeakDate   string
	PeakCount  int
}
