// Package main provides the CLI entry point for woopulse.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"WooPulse/internal/render"
	"WooPulse/internal/service/ratelimit"
	"WooPulse/internal/service/woocommerce"
	"WooPulse/internal/usecase"
	"WooPulse/pkg/config"
	"WooPulse/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const header = `
╔══════════════════════════════════════════════════════════════════════════╗
║                    W O O C O M M E R C E   A N A L Y T I C S              ║
║                        [ Sales Performance Monitor ]                      ║
╚══════════════════════════════════════════════════════════════════════════╝
`

var (
	configPath string
	days       int
	window     int
	status     string
	noLegend   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "woopulse",
		Short: "Render a daily sales trend chart from a WooCommerce store",
		Long: `woopulse fetches completed orders over the WooCommerce REST API,
aggregates them into a daily sales series, smooths the series with a
simple and a weighted moving average, and prints an ASCII chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config/config.yaml", "config file path")
	rootCmd.Flags().IntVar(&days, "days", 0, "days to fetch (overrides config)")
	rootCmd.Flags().IntVar(&window, "window", 0, "moving-average window (overrides config)")
	rootCmd.Flags().StringVar(&status, "status", "", "order status filter (overrides config)")
	rootCmd.Flags().BoolVar(&noLegend, "no-legend", false, "suppress the legend box")

	if err := rootCmd.Execute(); err != nil {
		printErrorBox(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Credentials commonly live in a local .env; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	applyFlags(cfg)

	log, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}

	source := woocommerce.New(
		woocommerce.WithBaseURL(cfg.WooCommerce.BaseURL),
		woocommerce.WithCredentials(cfg.WooCommerce.ConsumerKey, cfg.WooCommerce.ConsumerSecret),
		woocommerce.WithVersion(cfg.WooCommerce.Version),
		woocommerce.WithTimeout(cfg.WooCommerce.Timeout),
		woocommerce.WithPageSize(cfg.WooCommerce.PageSize),
		woocommerce.WithThrottle(ratelimit.New(cfg.WooCommerce.PageInterval)),
	)

	uc := usecase.NewSalesReportUseCase(source, log, render.Config{
		Height:       cfg.Chart.Height,
		MaxY:         cfg.Chart.MaxY,
		LeftMargin:   cfg.Chart.LeftMargin,
		LabelSpacing: cfg.Chart.LabelSpacing,
		NoLegend:     noLegend,
	})

	fmt.Printf("%s\n", header)
	log.Info("fetching sales data",
		logger.String("store", cfg.WooCommerce.BaseURL),
		logger.Int("days", cfg.Report.Days))

	result, err := uc.Run(context.Background(), usecase.RunParams{
		Days:    cfg.Report.Days,
		Window:  cfg.Report.Window,
		Weights: cfg.Report.Weights,
		Status:  cfg.Report.Status,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Chart)
	fmt.Println()
	fmt.Println(render.SummaryBox(result.Summary))
	return nil
}

func applyFlags(cfg *config.Config) {
	if days > 0 {
		cfg.Report.Days = days
	}
	if window > 0 {
		cfg.Report.Window = window
	}
	if status != "" {
		cfg.Report.Status = status
	}
}

func printErrorBox(err error) {
	msg := err.Error()
	width := len(msg)
	if width < 11 {
		width = 11
	}
	fmt.Fprintln(os.Stderr, "╔═══ ERROR "+strings.Repeat("═", width-7)+"╗")
	fmt.Fprintf(os.Stderr, "║ %-*s ║\n", width, msg)
	fmt.Fprintln(os.Stderr, "╚"+strings.Repeat("═", width+2)+"╝")
}
