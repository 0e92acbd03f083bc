// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI defaults read from the environment; flags override them.
type Config struct {
	Target     string   `env:"SRB2MODNAME_TARGET"      envDefault:"srb2"`
	Exclude    []string `env:"SRB2MODNAME_EXCLUDE"     envSeparator:","`
	Workers    int      `env:"SRB2MODNAME_WORKERS"     envDefault:"4"`
	StrictUTF8 bool     `env:"SRB2MODNAME_STRICT_UTF8"`
}

// loadConfig parses Config from environment variables.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}
