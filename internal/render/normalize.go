package render

import "WooPulse/internal/domain/models"

// Normalize maps each sample onto a canvas row in [0, height-1], row 0
// being the top of the plot. Values are clamped to maxY on the upper
// side only; sales counts cannot go negative, and anything that still
// scales out of range is dropped by the plot bounds check. Invalid
// samples map to -1 (no row).
func Normalize(samples []models.Sample, maxY float64, height int) []int {
	rows := make([]int, len(samples))
	for i, s := range samples {
		if !s.Valid {
			rows[i] = -1
			continue
		}
		v := s.Value
		if v > maxY {
			v = maxY
		}
		rows[i] = height - 1 - int((v/maxY)*float64(height-1))
	}
	return rows
}
