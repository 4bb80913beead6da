package stats

import (
    "testing"

    "WooPulse/pkg/errs"
)

func TestMovingAverageUniformMeanOfRamp(t *testing.T) {
    data := []float64{1, 2, 3, 4, 5, 6, 7}
    out, err := MovingAverage(data, 7, nil)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(out) != len(data) {
        t.Fatalf("length mismatch: %d != %d", len(out), len(data))
    }
    for i := 0; i < 6; i++ {
        if out[i].Valid {
            t.Fatalf("index %d should be undefined", i)
        }
    }
    if !out[6].Valid || out[6].Value != 4.0 {
        t.Fatalf("expected 4.0 at index 6, got %+v", out[6])
    }
}

func TestMovingAverageUniformConstantSeries(t *testing.T) {
    data := make([]float64, 10)
    for i := range data {
        data[i] = 5
    }
    out, err := MovingAverage(data, 3, nil)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    for i, s := range out {
        if i < 2 {
            if s.Valid {
                t.Fatalf("index %d should be undefined", i)
            }
            continue
        }
        if !s.Valid || s.Value != 5 {
            t.Fatalf("index %d: expected 5, got %+v", i, s)
        }
    }
}

func TestMovingAverageNewestWeightLast(t *testing.T) {
    data := []float64{1, 2, 3}
    out, err := MovingAverage(data, 3, []float64{0, 0, 1})
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if !out[2].Valid || out[2].Value != 3 {
        t.Fatalf("weights[window-1] must multiply the newest point, got %+v", out[2])
    }
}

func TestMovingAverageRounding(t *testing.T) {
    out, err := MovingAverage([]float64{1, 1, 2}, 3, nil)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if out[2].Value != 1.33 {
        t.Fatalf("expected 1.33, got %v", out[2].Value)
    }
}

func TestMovingAverageWindowLargerThanData(t *testing.T) {
    out, err := MovingAverage([]float64{1, 2, 3}, 10, nil)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    for i, s := range out {
        if s.Valid {
            t.Fatalf("index %d should be undefined", i)
        }
    }
}

func TestMovingAverageWindowOne(t *testing.T) {
    data := []float64{1.234, 2}
    out, err := MovingAverage(data, 1, nil)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if !out[0].Valid || out[0].Value != 1.23 {
        t.Fatalf("expected 1.23, got %+v", out[0])
    }
    if !out[1].Valid || out[1].Value != 2 {
        t.Fatalf("expected 2, got %+v", out[1])
    }
}

func TestMovingAverageInvalidWeightLength(t *testing.T) {
    _, err := MovingAverage([]float64{1, 2, 3}, 3, []float64{0.5, 0.5})
    if !errs.IsCode(err, errs.CodeInvalidWeightLength) {
        t.Fatalf("expected invalid weight length error, got %v", err)
    }
}

func TestMovingAverageWeightsNotNormalized(t *testing.T) {
    _, err := MovingAverage([]float64{1, 2, 3}, 2, []float64{0.5, 0.4})
    if !errs.IsCode(err, errs.CodeWeightsNotNormalized) {
        t.Fatalf("expected weights not normalized error, got %v", err)
    }
}

func TestMovingAverageWeightsWithinTolerance(t *testing.T) {
    // Off by 1e-12, inside the 1e-10 tolerance.
    _, err := MovingAverage([]float64{1, 2, 3}, 2, []float64{0.5, 0.5 + 1e-12})
    if err != nil {
        t.Fatalf("tolerance should accept near-normalized weights: %v", err)
    }
}

func TestMovingAverageDefaultWeights7Normalized(t *testing.T) {
    _, err := MovingAverage([]float64{1, 2, 3, 4, 5, 6, 7}, 7, DefaultWeights7)
    if err != nil {
        t.Fatalf("stock weights must be valid: %v", err)
    }
}

func TestMovingAverageRejectsZeroWindow(t *testing.T) {
    if _, err := MovingAverage([]float64{1}, 0, nil); err == nil {
        t.Fatalf("expected error for window 0")
    }
}
