// Package logging builds the zerolog logger shared by the command and the trie.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/shawn28e7/trie/internal/config"
)

// New returns a logger writing to w at the configured level.
// Format "console" writes human readable lines, "json" writes one object per line.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level: %w", err)
	}

	out := w
	switch cfg.Format {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
