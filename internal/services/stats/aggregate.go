package stats

import (
    "sort"

    "WooPulse/internal/domain/models"
    "WooPulse/pkg/util"
)

// AggregateDaily buckets orders into per-day counts at calendar-day
// granularity. Buckets come back sorted by date ascending regardless of
// input order; each date appears once. Timestamp validity is enforced at
// the ingestion boundary, so this cannot fail.
func AggregateDaily(orders []models.Order) models.DailySeries {
    byDay := make(map[string]int, len(orders))
    for _, o := range orders {
        byDay[util.DayKey(o.DateCreated)]++
    }

    out := make(models.DailySeries, 0, len(byDay))
    for day, n := range byDay {
        out = append(out, models.DayCount{Date: day, Count: n})
    }
    sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
    return out
}
