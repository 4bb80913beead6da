package stats

import (
    "math"

    "WooPulse/internal/domain/models"
    "WooPulse/pkg/errs"
)

// weightTolerance bounds how far a supplied weight vector's sum may
// drift from 1 before the vector is rejected.
const weightTolerance = 1e-10

// DefaultWeights7 is the stock weight vector for the 7-day weighted
// moving average, biased towards recent days (newest weight last).
var DefaultWeights7 = []float64{0.05, 0.1, 0.1, 0.15, 0.15, 0.2, 0.25}

// MovingAverage computes a windowed average over data. With weights nil
// every point in the window gets 1/window (simple moving average).
// Supplied weights apply most-recent-last: weights[window-1] multiplies
// the current point.
//
// The first window-1 samples are invalid since no full window exists
// yet; a window larger than the data yields an all-invalid series.
// Defined values are rounded to 2 decimal digits.
func MovingAverage(data []float64, window int, weights []float64) ([]models.Sample, error) {
    if window < 1 {
        return nil, errs.Newf(errs.CodeInvalidWeightLength, "window must be >= 1, got %d", window)
    }
    if weights == nil {
        weights = make([]float64, window)
        for i := range weights {
            weights[i] = 1 / float64(window)
        }
    }
    if len(weights) != window {
        return nil, errs.Newf(errs.CodeInvalidWeightLength,
            "length of weights must equal window size: %d != %d", len(weights), window)
    }
    sum := 0.0
    for _, w := range weights {
        sum += w
    }
    if math.Abs(sum-1) > weightTolerance {
        return nil, errs.Newf(errs.CodeWeightsNotNormalized, "weights must sum to 1, got %g", sum)
    }

    out := make([]models.Sample, len(data))
    for i := range data {
        if i < window-1 {
            continue
        }
        weighted := 0.0
        for k, w := range weights {
            weighted += w * data[i-window+1+k]
        }
        out[i] = models.Sample{Value: round2(weighted), Valid: true}
    }
    return out, nil
}

// Samples lifts a plain numeric series into an all-valid sample series.
func Samples(data []float64) []models.Sample {
    out := make([]models.Sample, len(data))
    for i, v := range data {
        out[i] = models.Sample{Value: v, Valid: true}
    }
    return out
}

func round2(v float64) float64 {
    return math.Round(v*100) / 100
}
