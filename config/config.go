package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nzai/tickerboard/constants"
	"github.com/nzai/tickerboard/quotes"
	"github.com/nzai/tickerboard/screens"
	"go.uber.org/zap/zapcore"
)

const (
	// ScreenRaylib draw in a raylib window
	ScreenRaylib = screens.KindRaylib
	// ScreenConsole print frames to stdout
	ScreenConsole = screens.KindConsole
)

// Duration toml friendly time.Duration, eg: "60s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = duration
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config board config
type Config struct {
	Tickers      []string `toml:"tickers"`
	Interval     Duration `toml:"interval"`
	FailureDelay Duration `toml:"failure_delay"`
	Screen       string   `toml:"screen"`
	Fullscreen   bool     `toml:"fullscreen"`
	BaseURL      string   `toml:"base_url"`
	UserAgent    string   `toml:"user_agent"`
	Timeout      Duration `toml:"timeout"`
	Listen       string   `toml:"listen"`
	Nsq          struct {
		Broker  string `toml:"broker"`
		TLSCert string `toml:"tls_cert"`
		TLSKey  string `toml:"tls_key"`
		Topic   string `toml:"topic"`
	} `toml:"nsq"`
	Log struct {
		Level      string `toml:"level"`
		File       string `toml:"file"`
		MaxSize    int    `toml:"max_size"`
		MaxBackups int    `toml:"max_backups"`
		MaxAge     int    `toml:"max_age"`
	} `toml:"log"`
}

// Default config equal to a board started without any config
func Default() *Config {
	c := &Config{
		Tickers:      append([]string(nil), constants.DefaultTickers...),
		Interval:     Duration{constants.CycleInterval},
		FailureDelay: Duration{constants.FailureDelay},
		Screen:       ScreenRaylib,
		Fullscreen:   true,
		BaseURL:      constants.YahooBaseURL,
		UserAgent:    constants.BrowserUserAgent,
	}
	c.Log.Level = "info"
	c.Log.MaxSize = 10
	c.Log.MaxBackups = 3
	c.Log.MaxAge = 28

	return c
}

// Valid validate config, tickers are normalized
func (s *Config) Valid() error {
	s.Tickers = quotes.NormalizeTickers(s.Tickers)
	if len(s.Tickers) == 0 {
		return constants.ErrEmptyTickers
	}

	if s.Interval.Duration <= 0 {
		return fmt.Errorf("interval must be positive: %s", s.Interval.Duration)
	}

	if s.FailureDelay.Duration < 0 {
		return fmt.Errorf("failure_delay must not be negative: %s", s.FailureDelay.Duration)
	}

	if s.Timeout.Duration < 0 {
		return fmt.Errorf("timeout must not be negative: %s", s.Timeout.Duration)
	}

	switch s.Screen {
	case ScreenRaylib, ScreenConsole:
	default:
		return fmt.Errorf("screen invalid: %s", s.Screen)
	}

	if strings.TrimSpace(s.Nsq.Broker) != "" && strings.TrimSpace(s.Nsq.Topic) == "" {
		return errors.New("nsq.topic undefined")
	}

	if (s.Nsq.TLSCert == "") != (s.Nsq.TLSKey == "") {
		return errors.New("nsq.tls_cert and nsq.tls_key must be set together")
	}

	if _, err := zapcore.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("log.level invalid: %w", err)
	}

	return nil
}

// Parse parse config from file, an empty path returns the default config
func Parse(filePath string) (*Config, error) {
	c := Default()
	if filePath != "" {
		_, err := toml.DecodeFile(filePath, c)
		if err != nil {
			return nil, err
		}
	}

	return c, c.Valid()
}
