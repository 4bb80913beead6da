package util

import "strconv"

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
    if s == "" {
        return def
    }
    v, err := strconv.Atoi(s)
    if err != nil {
        return def
    }
    return v
}

// CenterPad centers s within width using spaces. Strings longer than
// width are returned unchanged.
func CenterPad(s string, width int) string {
    if len(s) >= width {
        return s
    }
    left := (width - len(s)) / 2
    right := width - len(s) - left
    out := make([]byte, 0, width)
    for i := 0; i < left; i++ {
        out = append(out, ' ')
    }
    out = append(out, s...)
    for i := 0; i < right; i++ {
        out = append(out, ' ')
    }
    return string(out)
}
