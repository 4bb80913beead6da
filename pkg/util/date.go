package util

import (
    "time"
)

// orderTimeLayouts covers the timestamp shapes WooCommerce emits for
// date_created: RFC3339 with zone, store-local without zone, and a
// space-separated variant some plugins produce.
var orderTimeLayouts = []string{
    time.RFC3339,
    time.RFC3339Nano,
    "2006-01-02T15:04:05",
    "2006-01-02 15:04:05",
}

// ParseOrderTime parses an ISO-8601 order timestamp. Returns (t, true)
// if any known layout worked.
func ParseOrderTime(s string) (time.Time, bool) {
    if s == "" {
        return time.Time{}, false
    }
    for _, layout := range orderTimeLayouts {
        if t, err := time.Parse(layout, s); err == nil {
            return t, true
        }
    }
    return time.Time{}, false
}

// DayKey truncates a timestamp to its calendar date, YYYY-MM-DD.
func DayKey(t time.Time) string {
    return t.Format("2006-01-02")
}
