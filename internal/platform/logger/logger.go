// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package logger builds the process-wide structured logger from [config.Config].
//
// Every record carries app=bookroyalty so the output can be filtered when
// several binaries share a sink.
package logger

import (
	"io"
	"log/slog"

	"github.com/taibuivan/bookroyalty/internal/platform/config"
	"github.com/taibuivan/bookroyalty/internal/platform/constants"
)

// New returns a JSON or text [slog.Logger] writing to w at the configured level.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String(constants.FieldApp, constants.AppName))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a config level name to a [slog.Level], defaulting to Info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
