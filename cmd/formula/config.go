package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/JoverZhang/formula"
)

type config struct {
	Overflow string `yaml:"overflow"`
	Color    bool   `yaml:"color"`
	Locale   string `yaml:"locale"`
	History  string `yaml:"history"`
	LogLevel string `yaml:"log_level"`
	Prompt   string `yaml:"prompt"`
}

func defaultConfig() config {
	return config{
		Overflow: "checked",
		Color:    true,
		History:  ".formula_history",
		LogLevel: "warn",
		Prompt:   "formula> ",
	}
}

// loadConfig reads the YAML config at path over the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config{}, err
	}
	defer f.Close()

	return parseConfig(f)
}

func parseConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("decoding config: %w", err)
	}

	if _, err := cfg.overflow(); err != nil {
		return config{}, err
	}
	if _, err := cfg.logLevel(); err != nil {
		return config{}, err
	}
	if cfg.Locale != "" {
		if _, err := language.Parse(cfg.Locale); err != nil {
			return config{}, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
		}
	}
	return cfg, nil
}

func (c config) overflow() (formula.Overflow, error) {
	return formula.ParseOverflow(c.Overflow)
}

func (c config) logLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
