package usecase

import (
	"context"
	"fmt"
	"time"

	"WooPulse/internal/domain/models"
	drepo "WooPulse/internal/domain/repository"
	"WooPulse/internal/render"
	"WooPulse/internal/services/stats"
	"WooPulse/pkg/logger"
)

// SalesReportUseCase runs the full batch pipeline: fetch orders, bucket
// them per day, smooth, render.
type SalesReportUseCase struct {
	source drepo.OrderSource
	log    *logger.Logger
	chart  render.Config
}

func NewSalesReportUseCase(source drepo.OrderSource, log *logger.Logger, chart render.Config) *SalesReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SalesReportUseCase{source: source, log: log, chart: chart}
}

type RunParams struct {
	Days    int       // report span; x-axis runs days-1 .. 0 days ago
	Window  int       // averaging window in days
	Weights []float64 // weighted-MA vector, newest weight last; nil picks the stock vector for window 7
	Status  string    // order status filter, default "completed"
	Now     time.Time // report end; zero means time.Now()
}

type RunResult struct {
	Chart   string
	Summary models.Summary
	Orders  int
	Pages   int
}

// Run executes one report. Any error aborts the run; there is no partial
// rendering.
func (uc *SalesReportUseCase) Run(ctx context.Context, p RunParams) (*RunResult, error) {
	if p.Days < 2 {
		return nil, fmt.Errorf("days must be >= 2, got %d", p.Days)
	}
	if p.Window < 1 {
		return nil, fmt.Errorf("window must be >= 1, got %d", p.Window)
	}
	if p.Status == "" {
		p.Status = "completed"
	}
	if p.Now.IsZero() {
		p.Now = time.Now()
	}
	weights := p.Weights
	if weights == nil && p.Window == len(stats.DefaultWeights7) {
		weights = stats.DefaultWeights7
	}

	q := drepo.OrderQuery{
		After:  p.Now.AddDate(0, 0, -p.Days),
		Before: p.Now,
		Status: p.Status,
	}

	orders, pages, err := uc.fetchAll(ctx, q)
	if err != nil {
		return nil, err
	}
	uc.log.Info("orders fetched",
		logger.Int("orders", len(orders)),
		logger.Int("pages", pages),
		logger.Int("days", p.Days))

	daily := stats.AggregateDaily(orders)
	counts := daily.Counts()

	ma, err := stats.MovingAverage(counts, p.Window, nil)
	if err != nil {
		return nil, fmt.Errorf("moving average: %w", err)
	}
	wma, err := stats.MovingAverage(counts, p.Window, weights)
	if err != nil {
		return nil, fmt.Errorf("weighted moving average: %w", err)
	}

	daysAgo := make([]int, p.Days)
	for i := range daysAgo {
		daysAgo[i] = p.Days - 1 - i
	}

	chart := render.NewChart(uc.chart).Draw([]render.Series{
		{Samples: stats.Samples(counts), Label: "Daily Sales", Glyph: render.GlyphBlock},
		{Samples: ma, Label: fmt.Sprintf("%d-day Moving Average", p.Window), Glyph: render.GlyphDiamond},
		{Samples: wma, Label: fmt.Sprintf("%d-day Weighted MA", p.Window), Glyph: render.GlyphCircle},
	}, daysAgo)

	return &RunResult{
		Chart:   chart,
		Summary: stats.Summarize(orders, daily, p.Days),
		Orders:  len(orders),
		Pages:   pages,
	}, nil
}

// fetchAll walks pages from 1 until the source returns an empty page.
func (uc *SalesReportUseCase) fetchAll(ctx context.Context, q drepo.OrderQuery) ([]models.Order, int, error) {
	var all []models.Order
	pages := 0
	for page := 1; ; page++ {
		batch, err := uc.source.FetchPage(ctx, q, page)
		if err != nil {
			return nil, pages, err
		}
		if len(batch) == 0 {
			break
		}
		pages++
		all = append(all, batch...)
		uc.log.Debug("orders page fetched",
			logger.Int("page", page),
			logger.Int("orders", len(batch)))
	}
	return all, pages, nil
}
