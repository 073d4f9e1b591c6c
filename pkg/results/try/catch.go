package try

import (
	"log/slog"

	"github.com/ib-77/results/pkg/results"
)

// LogCatch returns a Catch that logs every fault at error level.
// A nil logger means slog.Default().
func LogCatch(logger results.Logger) Catch {
	if logger == nil {
		logger = slog.Default()
	}

	return func(fault error) {
		logger.Error("fault captured", "error", fault)
	}
}

// Collect returns a Catch that appends every fault to dst.
// It is not safe for concurrent use.
func Collect(dst *[]error) Catch {
	return func(fault error) {
		*dst = append(*dst, fault)
	}
}
