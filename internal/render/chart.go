// Package render draws overlaid numeric series as a bordered text-mode
// chart: legend, y-labeled plot rows, x-axis ticks and caption.
package render

import (
	"fmt"
	"strings"

	"WooPulse/internal/domain/models"
	"WooPulse/pkg/util"
)

// Series markers. Any caller may substitute its own glyphs; these are
// the stock set in overlay order.
const (
	GlyphBlock   = '█'
	GlyphDiamond = '◆'
	GlyphCircle  = '●'

	background = '·'

	legendWidth      = 40
	legendLabelWidth = 32
)

// Config is the immutable chart geometry, fixed at construction.
type Config struct {
	Height       int  // plot rows
	MaxY         int  // value mapped to the top row; higher values clamp
	LeftMargin   int  // columns reserved for y-axis labels
	LabelSpacing int  // canvas columns per x-axis label
	NoLegend     bool // suppress the legend box
}

// DefaultConfig returns the stock 20-row geometry.
func DefaultConfig() Config {
	return Config{Height: 20, MaxY: 20, LeftMargin: 6, LabelSpacing: 3}
}

// Series is one plottable data series.
type Series struct {
	Samples []models.Sample
	Label   string
	Glyph   rune
}

// Chart renders series onto a character canvas sized from the x-axis
// label count. It performs no validation: series longer than the label
// list lose their overflow points rather than erroring.
type Chart struct {
	cfg Config
}

func NewChart(cfg Config) Chart {
	def := DefaultConfig()
	if cfg.Height < 2 {
		cfg.Height = def.Height
	}
	if cfg.MaxY < 1 {
		cfg.MaxY = def.MaxY
	}
	if cfg.LeftMargin < 4 {
		cfg.LeftMargin = def.LeftMargin
	}
	if cfg.LabelSpacing < 1 {
		cfg.LabelSpacing = def.LabelSpacing
	}
	return Chart{cfg: cfg}
}

// Draw composes the full chart text. daysAgo supplies the x-axis tick
// labels, oldest first; the canvas width follows from their count.
func (c Chart) Draw(series []Series, daysAgo []int) string {
	width := len(daysAgo)*c.cfg.LabelSpacing - 1
	if width < 1 {
		width = 1
	}
	height := c.cfg.Height
	margin := c.cfg.LeftMargin
	totalWidth := width + margin + 1

	// Canvas default-filled with the background glyph.
	grid := make([][]rune, height)
	for i := range grid {
		row := make([]rune, width)
		for j := range row {
			row[j] = background
		}
		grid[i] = row
	}

	var xScale float64
	if len(daysAgo) > 1 {
		xScale = float64(width-1) / float64(len(daysAgo)-1)
	}

	// Plot each series; later series overwrite earlier ones on collision.
	for _, s := range series {
		rows := Normalize(s.Samples, float64(c.cfg.MaxY), height)
		for i, y := range rows {
			if y < 0 {
				continue
			}
			x := int(float64(i) * xScale)
			if x >= 0 && x < width && y < height {
				grid[y][x] = s.Glyph
			}
		}
	}

	var out []string

	if !c.cfg.NoLegend {
		out = append(out, c.legend(series)...)
		out = append(out, "")
	}

	// Plot area with y-axis labels counting down from MaxY.
	out = append(out, "╔"+strings.Repeat("═", totalWidth)+"╗")
	for i := 0; i < height; i++ {
		yValue := c.cfg.MaxY - i
		out = append(out, fmt.Sprintf("║ %*d │ %s ║", margin-4, yValue, string(grid[i])))
	}
	out = append(out, "╟"+strings.Repeat("─", margin)+"┴"+strings.Repeat("─", width)+"╢")

	out = append(out, "║ "+strings.Repeat(" ", margin)+c.xAxis(daysAgo, width, xScale)+"║")
	out = append(out, "║ "+strings.Repeat(" ", margin)+util.CenterPad("Days Ago", width)+"║")
	out = append(out, "╚"+strings.Repeat("═", totalWidth)+"╝")

	return strings.Join(out, "\n")
}

func (c Chart) legend(series []Series) []string {
	out := make([]string, 0, len(series)+2)
	out = append(out, "╔════ DATA SERIES "+strings.Repeat("═", legendWidth-19)+"╗")
	for _, s := range series {
		label := s.Label
		if len(label) > legendLabelWidth {
			label = label[:legendLabelWidth]
		}
		out = append(out, fmt.Sprintf("║ %c : %-*s ║", s.Glyph, legendLabelWidth, label))
	}
	out = append(out, "╚"+strings.Repeat("═", legendWidth-2)+"╝")
	return out
}

// xAxis lays each tick label centered at its scaled column.
func (c Chart) xAxis(daysAgo []int, width int, xScale float64) string {
	axis := make([]rune, width)
	for i := range axis {
		axis[i] = ' '
	}
	for i, day := range daysAgo {
		label := fmt.Sprintf("%d", day)
		pos := int(float64(i) * xScale)
		start := pos - len(label)/2
		if start < 0 {
			start = 0
		}
		for j, ch := range label {
			if start+j < width {
				axis[start+j] = ch
			}
		}
	}
	return string(axis)
}
