// Package logging carries the shared *slog.Logger used across gridfmt
// packages. Output is discarded until a caller installs a logger.
package logging

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger installs the logger every gridfmt package logs through. A nil
// argument reverts to discarding output. Concurrent callers are fine.
func SetLogger(sl *slog.Logger) {
	if sl == nil {
		logger.Store(newDiscardLogger())
	} else {
		logger.Store(sl)
	}
}

// Logger returns the installed logger, falling back to one that discards
// everything. Concurrent callers are fine.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = newDiscardLogger()
		logger.Store(l)
	}
	return l
}
