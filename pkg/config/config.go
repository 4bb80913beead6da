package config

import (
	"fmt"
	"os"
	"time"

	"WooPulse/pkg/util"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Environment string `yaml:"environment" default:"production"`
	Logging     struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stderr"`
	} `yaml:"logging"`
	WooCommerce struct {
		BaseURL        string        `yaml:"base_url" validate:"required,url"`
		ConsumerKey    string        `yaml:"consumer_key" validate:"required"`
		ConsumerSecret string        `yaml:"consumer_secret" validate:"required"`
		Version        string        `yaml:"version" default:"wc/v3"`
		Timeout        time.Duration `yaml:"timeout" default:"60s"`
		PageSize       int           `yaml:"page_size" default:"100" validate:"gte=1,lte=100"`
		PageInterval   time.Duration `yaml:"page_interval" default:"200ms"`
	} `yaml:"woocommerce"`
	Report struct {
		Days    int       `yaml:"days" default:"30" validate:"gte=2,lte=365"`
		Window  int       `yaml:"window" default:"7" validate:"gte=1"`
		Status  string    `yaml:"status" default:"completed"`
		Weights []float64 `yaml:"weights"`
	} `yaml:"report"`
	Chart struct {
		Height       int `yaml:"height" default:"20" validate:"gte=2"`
		MaxY         int `yaml:"max_y" default:"20" validate:"gte=1"`
		LeftMargin   int `yaml:"left_margin" default:"6" validate:"gte=4"`
		LabelSpacing int `yaml:"label_spacing" default:"3" validate:"gte=1"`
	} `yaml:"chart"`
}

// Load reads and parses a YAML configuration file, fills defaults and
// validates required fields.
func Load(path string) (*Config, error) {
	c, err := parse(path)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables before validating. Credentials usually come from the
// environment; the YAML fields exist for local runs.
func LoadWithEnv(path string) (*Config, error) {
	c, err := parse(path)
	if err != nil {
		return nil, err
	}

	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func parse(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}

	return &c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WOO_BASE_URL"); v != "" {
		c.WooCommerce.BaseURL = v
	}
	if v := os.Getenv("WOO_CONSUMER_KEY"); v != "" {
		c.WooCommerce.ConsumerKey = v
	}
	if v := os.Getenv("WOO_CONSUMER_SECRET"); v != "" {
		c.WooCommerce.ConsumerSecret = v
	}
	if v := os.Getenv("WOO_REPORT_STATUS"); v != "" {
		c.Report.Status = v
	}
	c.Report.Days = util.ParseIntDefault(os.Getenv("WOO_REPORT_DAYS"), c.Report.Days)
	c.Report.Window = util.ParseIntDefault(os.Getenv("WOO_REPORT_WINDOW"), c.Report.Window)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if n := len(c.Report.Weights); n != 0 && n != c.Report.Window {
		return fmt.Errorf("report.weights must have %d entries, got %d", c.Report.Window, n)
	}
	return nil
}
