package config

import (
	"os"
	"path/filepath"
	"testing"
)

const minimalYAML = `
woocommerce:
  base_url: https://shop.example.com
  consumer_key: ck_test
  consumer_secret: cs_test
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Report.Days != 30 || cfg.Report.Window != 7 {
		t.Fatalf("report defaults not applied: %+v", cfg.Report)
	}
	if cfg.Report.Status != "completed" {
		t.Fatalf("status default not applied: %q", cfg.Report.Status)
	}
	if cfg.WooCommerce.Version != "wc/v3" || cfg.WooCommerce.PageSize != 100 {
		t.Fatalf("woocommerce defaults not applied: %+v", cfg.WooCommerce)
	}
	if cfg.Chart.Height != 20 || cfg.Chart.MaxY != 20 {
		t.Fatalf("chart defaults not applied: %+v", cfg.Chart)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("logging defaults not applied: %+v", cfg.Logging)
	}
}

func TestLoadRejectsMissingCredentials(t *testing.T) {
	_, err := Load(writeConfig(t, `
woocommerce:
  base_url: https://shop.example.com
`))
	if err == nil {
		t.Fatalf("expected validation error for missing credentials")
	}
}

func TestLoadRejectsWeightWindowMismatch(t *testing.T) {
	_, err := Load(writeConfig(t, minimalYAML+`
report:
  window: 7
  weights: [0.5, 0.5]
`))
	if err == nil {
		t.Fatalf("expected weights/window mismatch error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("WOO_CONSUMER_KEY", "ck_env")
	t.Setenv("WOO_REPORT_DAYS", "14")

	cfg, err := LoadWithEnv(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WooCommerce.ConsumerKey != "ck_env" {
		t.Fatalf("env credential override not applied: %q", cfg.WooCommerce.ConsumerKey)
	}
	if cfg.Report.Days != 14 {
		t.Fatalf("env days override not applied: %d", cfg.Report.Days)
	}
}
