package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lmittmann/tint"

	"github.com/alexshd/primesquares"
)

// levelOff sits above every level the library or CLI logs at.
const levelOff = slog.Level(64)

type fileConfig struct {
	Threshold  int64  `toml:"threshold"`
	LogLevel   string `toml:"log_level"`
	TimeFormat string `toml:"time_format"`
	NoColor    bool   `toml:"no_color"`
}

// settings is the resolved CLI configuration.
type settings struct {
	Threshold  uint64
	LogLevel   slog.Level
	TimeFormat string
	NoColor    bool
}

func defaultSettings() settings {
	return settings{
		Threshold:  primesquares.DefaultConfig().Threshold,
		LogLevel:   slog.LevelInfo,
		TimeFormat: "15:04:05",
	}
}

// loadSettings applies the keys present in a TOML file on top of the defaults.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return settings{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return settings{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("threshold") {
		if raw.Threshold < 1 || raw.Threshold > primesquares.MaxThreshold {
			return settings{}, fmt.Errorf("load config: threshold %d: %w", raw.Threshold, primesquares.ErrInvalidThreshold)
		}
		s.Threshold = uint64(raw.Threshold)
	}

	if meta.IsDefined("log_level") {
		lvl, err := parseLevel(raw.LogLevel)
		if err != nil {
			return settings{}, fmt.Errorf("load config: %w", err)
		}
		s.LogLevel = lvl
	}

	if meta.IsDefined("time_format") {
		s.TimeFormat = strings.TrimSpace(raw.TimeFormat)
	}

	if meta.IsDefined("no_color") {
		s.NoColor = raw.NoColor
	}

	return s, nil
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "off", "none", "disabled":
		return levelOff, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", raw)
	}
}

func newLogger(w io.Writer, s settings) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      s.LogLevel,
		TimeFormat: s.TimeFormat,
		NoColor:    s.NoColor,
	}))
}
