package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/quantstream/quantstream/pkg/indicator"
	"github.com/quantstream/quantstream/pkg/types"
)

const DefaultATRPeriod = 14

type ATRConfig struct {
	Period int    `json:"period" yaml:"period"`
	MAType string `json:"maType" yaml:"maType"`

	// UsePrevious is a pointer so that an omitted field keeps the
	// classic true-range behavior (true).
	UsePrevious *bool   `json:"usePrevious,omitempty" yaml:"usePrevious,omitempty"`
	ValueFloor  float64 `json:"valueFloor" yaml:"valueFloor"`
}

func (c *ATRConfig) UsePreviousClose() bool {
	if c.UsePrevious == nil {
		return true
	}
	return *c.UsePrevious
}

type MetricsConfig struct {
	Listen string `json:"listen" yaml:"listen"`
}

type Config struct {
	Symbol   string         `json:"symbol" yaml:"symbol"`
	Interval types.Interval `json:"interval" yaml:"interval"`

	// Backfill is the number of historical klines used to warm up the
	// indicator before going live. 0 skips the warmup.
	Backfill int `json:"backfill" yaml:"backfill"`

	ATR ATRConfig `json:"atr" yaml:"atr"`

	Metrics *MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
	}

	return Parse(content)
}

func Parse(content []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Interval == "" {
		c.Interval = types.Interval1m
	}

	if c.ATR.Period == 0 {
		c.ATR.Period = DefaultATRPeriod
	}

	if c.ATR.MAType == "" {
		c.ATR.MAType = indicator.MovingAverageTypeSimple.String()
	}
}

func (c *Config) Validate() error {
	if c.Symbol == "" {
		return errors.New("symbol is required")
	}

	if _, ok := types.SupportedIntervals[c.Interval]; !ok {
		return errors.Errorf("unsupported interval: %s", c.Interval)
	}

	if c.ATR.Period < 1 {
		return errors.Errorf("atr period must be a positive integer, got %d", c.ATR.Period)
	}

	if _, err := indicator.ParseMovingAverageType(c.ATR.MAType); err != nil {
		return err
	}

	if c.ATR.ValueFloor < 0 {
		return errors.Errorf("atr valueFloor must not be negative, got %v", c.ATR.ValueFloor)
	}

	if c.Backfill < 0 {
		return errors.Errorf("backfill must not be negative, got %d", c.Backfill)
	}

	return nil
}

// BuildATR constructs the configured AverageTrueRange indicator.
func (c *Config) BuildATR() (*indicator.AverageTrueRange, error) {
	maType, err := indicator.ParseMovingAverageType(c.ATR.MAType)
	if err != nil {
		return nil, err
	}

	return indicator.NewAverageTrueRange(c.ATR.Period, maType, c.ATR.UsePreviousClose(), c.ATR.ValueFloor)
}
