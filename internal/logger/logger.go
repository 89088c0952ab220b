// Package logger holds the process-wide zerolog logger.
//
//	logger.Init(cfg.Log.Level, cfg.Log.Format)
//	log := logger.Get()
//	log.Info().Str("addr", addr).Msg("starting server")
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init configures the global logger. Unknown levels fall back to info.
func Init(level, format string) {
	var w io.Writer = os.Stdout
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	Set(New(w, level))
}

// New builds a logger writing to w at the given level.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Set replaces the global logger.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// Get returns the global logger.
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := global
	return &l
}
