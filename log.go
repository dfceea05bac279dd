package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"checkres/inspect"
)

// openLog returns a json logger appending to path, or a no-op logger when path
// is empty. The returned closer is always safe to call.
func openLog(path string) (zerolog.Logger, io.Closer, error) {
	if len(path) == 0 {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	logStream, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(logStream).With().Timestamp().Logger(), logStream, nil
}

func logResult(log zerolog.Logger, baseDir string, res inspect.Result) {
	switch res.Kind {
	case inspect.Resolved:
		log.Info().
			Str("base_dir", baseDir).
			Str("path", res.Path).
			Stringer("kind", res.Kind).
			Uint32("width", res.Width).
			Uint32("height", res.Height).
			Msg("resolved png dimensions")
	case inspect.ReadFailed:
		log.Error().
			Str("base_dir", baseDir).
			Str("path", res.Path).
			Stringer("kind", res.Kind).
			Err(res.Err).
			Msg("failed to read resolution")
	default:
		log.Warn().
			Str("base_dir", baseDir).
			Str("path", res.Path).
			Stringer("kind", res.Kind).
			Msg("no resolution")
	}
}
