// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

// config holds the settings read from the environment.
type config struct {
	// Set via JCHECK_DEBUG in the environment
	Debug bool
	// Set via JCHECK_MAX_DEPTH in the environment
	MaxDepth int
}

// loadConfig reads settings using getenv, which is typically os.Getenv.
func loadConfig(getenv func(string) string) (config, error) {
	var cfg config
	if debug := clean(getenv, "JCHECK_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			cfg.Debug = d
		} else {
			cfg.Debug = true
		}
	}
	if md := clean(getenv, "JCHECK_MAX_DEPTH"); md != "" {
		n, err := strconv.Atoi(md)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid JCHECK_MAX_DEPTH %q", md)
		}
		cfg.MaxDepth = n
	}
	return cfg, nil
}

// Clean quotes and spaces from the value
func clean(getenv func(string) string, key string) string {
	return strings.Trim(getenv(key), "\"' ")
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
