package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	// Snapshot source
	SnapshotPath string
	SnapshotURL  string
	ReloadEvery  time.Duration
	// Analysis thresholds (percentages)
	MovementThreshold   float64
	VolatilityThreshold float64
	ReversalThreshold   float64
	ArbitrageMinProfit  float64
	ArbitrageMaxTriples int
	// Report
	ReportPath string
}

func defaults() Config {
	return Config{
		Env:                 "local",
		LogLevel:            "info",
		Port:                "8080",
		RequestTimeout:      3 * time.Second,
		ShutdownTimeout:     10 * time.Second,
		SnapshotPath:        "currency_data.json",
		MovementThreshold:   0.5,
		VolatilityThreshold: 1.0,
		ReversalThreshold:   0.5,
		ArbitrageMinProfit:  1.0,
		ReportPath:          "analysis_report.txt",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func floatDef(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// Load builds the config in three layers: compiled defaults, an
// optional YAML file named by CONFIG_FILE, then environment variables.
func Load() Config {
	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		// A broken config file falls back to the other layers.
		_ = cfg.applyFile(path)
	}
	cfg.applyEnv()
	return cfg
}

type fileConfig struct {
	Env      *string `yaml:"env"`
	LogLevel *string `yaml:"log_level"`
	Port     *string `yaml:"port"`
	Snapshot struct {
		Path        *string `yaml:"path"`
		URL         *string `yaml:"url"`
		ReloadEvery *int    `yaml:"reload_every_ms"`
	} `yaml:"snapshot"`
	Thresholds struct {
		Movement   *float64 `yaml:"movement"`
		Volatility *float64 `yaml:"volatility"`
		Reversal   *float64 `yaml:"reversal"`
	} `yaml:"thresholds"`
	Arbitrage struct {
		MinProfit  *float64 `yaml:"min_profit"`
		MaxTriples *int     `yaml:"max_triples"`
	} `yaml:"arbitrage"`
	ReportPath *string `yaml:"report_path"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&c.Env, fc.Env)
	setStr(&c.LogLevel, fc.LogLevel)
	setStr(&c.Port, fc.Port)
	setStr(&c.SnapshotPath, fc.Snapshot.Path)
	setStr(&c.SnapshotURL, fc.Snapshot.URL)
	if fc.Snapshot.ReloadEvery != nil {
		c.ReloadEvery = time.Duration(*fc.Snapshot.ReloadEvery) * time.Millisecond
	}
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat(&c.MovementThreshold, fc.Thresholds.Movement)
	setFloat(&c.VolatilityThreshold, fc.Thresholds.Volatility)
	setFloat(&c.ReversalThreshold, fc.Thresholds.Reversal)
	setFloat(&c.ArbitrageMinProfit, fc.Arbitrage.MinProfit)
	if fc.Arbitrage.MaxTriples != nil {
		c.ArbitrageMaxTriples = *fc.Arbitrage.MaxTriples
	}
	setStr(&c.ReportPath, fc.ReportPath)
	return nil
}

func (c *Config) applyEnv() {
	c.Env = getEnv("ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Port = getEnv("PORT", c.Port)
	c.RequestTimeout = time.Duration(atoiDef(getEnv("REQUEST_TIMEOUT_MS", ""), int(c.RequestTimeout/time.Millisecond))) * time.Millisecond
	c.ShutdownTimeout = time.Duration(atoiDef(getEnv("SHUTDOWN_TIMEOUT_MS", ""), int(c.ShutdownTimeout/time.Millisecond))) * time.Millisecond
	c.SnapshotPath = getEnv("SNAPSHOT_FILE", c.SnapshotPath)
	c.SnapshotURL = getEnv("SNAPSHOT_URL", c.SnapshotURL)
	c.ReloadEvery = time.Duration(atoiDef(getEnv("RELOAD_EVERY_MS", ""), int(c.ReloadEvery/time.Millisecond))) * time.Millisecond
	c.MovementThreshold = floatDef(getEnv("MOVEMENT_THRESHOLD", ""), c.MovementThreshold)
	c.VolatilityThreshold = floatDef(getEnv("VOLATILITY_THRESHOLD", ""), c.VolatilityThreshold)
	c.ReversalThreshold = floatDef(getEnv("REVERSAL_THRESHOLD", ""), c.ReversalThreshold)
	c.ArbitrageMinProfit = floatDef(getEnv("ARBITRAGE_MIN_PROFIT", ""), c.ArbitrageMinProfit)
	c.ArbitrageMaxTriples = atoiDef(getEnv("ARBITRAGE_MAX_TRIPLES", ""), c.ArbitrageMaxTriples)
	c.ReportPath = getEnv("REPORT_FILE", c.ReportPath)
}
