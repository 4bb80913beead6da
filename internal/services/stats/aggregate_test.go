package stats

import (
    "testing"
    "time"

    "WooPulse/internal/domain/models"
)

func orderOn(t *testing.T, ts string) models.Order {
    t.Helper()
    parsed, err := time.Parse(time.RFC3339, ts)
    if err != nil {
        t.Fatalf("bad fixture %q: %v", ts, err)
    }
    return models.Order{DateCreated: parsed}
}

func TestAggregateDailyCountsAndOrder(t *testing.T) {
    // Input deliberately out of chronological order.
    orders := []models.Order{
        orderOn(t, "2024-01-02T08:00:00Z"),
        orderOn(t, "2024-01-01T10:00:00Z"),
        orderOn(t, "2024-01-01T23:59:59Z"),
    }

    got := AggregateDaily(orders)
    if len(got) != 2 {
        t.Fatalf("expected 2 buckets, got %d", len(got))
    }
    if got[0].Date != "2024-01-01" || got[0].Count != 2 {
        t.Fatalf("unexpected first bucket %+v", got[0])
    }
    if got[1].Date != "2024-01-02" || got[1].Count != 1 {
        t.Fatalf("unexpected second bucket %+v", got[1])
    }
}

func TestAggregateDailyEmpty(t *testing.T) {
    got := AggregateDaily(nil)
    if len(got) != 0 {
        t.Fatalf("expected empty series, got %d buckets", len(got))
    }
}

func TestDailySeriesCounts(t *testing.T) {
    s := models.DailySeries{
        {Date: "2024-01-01", Count: 2},
        {Date: "2024-01-02", Count: 1},
    }
    counts := s.Counts()
    if len(counts) != 2 || counts[0] != 2 || counts[1] != 1 {
        t.Fatalf("unexpected counts %v", counts)
    }
}
