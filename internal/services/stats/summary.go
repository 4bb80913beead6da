package stats

import (
    "WooPulse/internal/domain/models"

    "github.com/shopspring/decimal"
)

// Summarize reduces the fetched orders to headline figures for the block
// printed under the chart. days is the requested report span, which may
// exceed the number of days that actually saw sales.
func Summarize(orders []models.Order, daily models.DailySeries, days int) models.Summary {
    s := models.Summary{
        Orders:  len(orders),
        Revenue: decimal.Zero,
    }
    for _, o := range orders {
        s.Revenue = s.Revenue.Add(o.Total)
        if s.Currency == "" {
            s.Currency = o.Currency
        }
    }
    if days > 0 {
        s.MeanPerDay = round2(float64(len(orders)) / float64(days))
    }
    for _, d := range daily {
        if d.Count > s.PeakCount {
            s.PeakCount = d.Count
            s.PeakDate = d.Date
        }
    }
    return s
}
