package util

import (
    "testing"
    "time"
)

func TestParseOrderTimeRFC3339(t *testing.T) {
    s := "2024-10-10T10:10:10Z"
    got, ok := ParseOrderTime(s)
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.UTC().Format(time.RFC3339) != s {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseOrderTimeNoZone(t *testing.T) {
    // WooCommerce emits store-local timestamps without a zone suffix.
    got, ok := ParseOrderTime("2024-10-10T10:10:10")
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Year() != 2024 || got.Hour() != 10 {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseOrderTimeInvalid(t *testing.T) {
    for _, s := range []string{"", "not-a-date", "2024-13-40T99:00:00"} {
        if _, ok := ParseOrderTime(s); ok {
            t.Fatalf("expected parse failure for %q", s)
        }
    }
}

func TestDayKey(t *testing.T) {
    ts := time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC)
    if got := DayKey(ts); got != "2024-01-02" {
        t.Fatalf("unexpected day key %q", got)
    }
}

func TestCenterPad(t *testing.T) {
    if got := CenterPad("ab", 6); got != "  ab  " {
        t.Fatalf("unexpected pad %q", got)
    }
    if got := CenterPad("abc", 6); got != " abc  " && got != "  abc " {
        t.Fatalf("unexpected pad %q", got)
    }
    if got := CenterPad("abcdefgh", 4); got != "abcdefgh" {
        t.Fatalf("long string must be unchanged, got %q", got)
    }
}
