// Package cli implements the circuits command-line interface.
//
// The CLI reads junction-box coordinates from a text file, runs one or both
// connection policies and prints the answers. It is built on cobra, logs with
// charmbracelet/log and reads an optional TOML configuration file.
//
// # Commands
//
//   - bounded: connect the k closest pairs, print the product of the three largest circuits
//   - single:  connect until one circuit remains, print the product of the final pair's X coordinates
//   - solve:   run both
//
// # Logging
//
// --verbose (-v) lowers the level to debug, which also emits one line per
// examined pair. Loggers travel through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/circuits/circuit"
)

// newLogger creates the CLI logger: timestamps as "HH:MM:SS.ms", messages
// below level dropped.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// runLog reports one policy run: debug lines for every examined pair while it
// runs, then an info line with the totals and elapsed time.
type runLog struct {
	logger *log.Logger
	start  time.Time
}

func newRunLog(l *log.Logger, policy string) *runLog {
	return &runLog{logger: l.WithPrefix(policy), start: time.Now()}
}

// hooks returns the circuit options emitting per-pair debug lines, or nil when
// the logger would drop them anyway.
func (r *runLog) hooks() []circuit.Option {
	if r.logger.GetLevel() > log.DebugLevel {
		return nil
	}
	return []circuit.Option{
		circuit.WithOnConnect(func(s circuit.Step) {
			r.logger.Debugf("Connected %s and %s (distance: %.2f)", s.From, s.To, s.Edge.Distance())
		}),
		circuit.WithOnSkip(func(s circuit.Step) {
			r.logger.Debugf("Skipped %s and %s (already in same circuit)", s.From, s.To)
		}),
	}
}

// done logs the attempt and merge counts with the elapsed time rounded to the
// millisecond, e.g. "bounded: Finished attempts=10 merges=9 elapsed=2ms".
func (r *runLog) done(attempts, merges int) {
	r.logger.Info("Finished",
		"attempts", attempts,
		"merges", merges,
		"elapsed", time.Since(r.start).Round(time.Millisecond),
	)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the commands run under it.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
