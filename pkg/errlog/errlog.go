// Package errlog routes drift framework errors to a zerolog logger.
//
// Install it once at startup:
//
//	errors.SetHandler(errlog.New(os.Stderr, false))
package errlog

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	drifterrors "github.com/go-drift/drift/pkg/errors"
)

// Handler is a drift error handler that writes one structured record per
// reported error.
type Handler struct {
	// LogHandler supplies any handler method this type does not override.
	drifterrors.LogHandler

	logger zerolog.Logger
}

// New returns a Handler writing JSON records to w. Verbose lowers the level to
// debug and adds stack traces.
func New(w io.Writer, verbose bool) *Handler {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(w).Level(level).With().Timestamp().Str("component", "drift").Logger()
	return NewWithLogger(logger, verbose)
}

// NewConsole returns a Handler writing human-readable lines to w.
func NewConsole(w io.Writer, verbose bool) *Handler {
	return New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}, verbose)
}

// NewWithLogger returns a Handler that writes to logger.
func NewWithLogger(logger zerolog.Logger, verbose bool) *Handler {
	return &Handler{
		LogHandler: drifterrors.LogHandler{Verbose: verbose},
		logger:     logger,
	}
}

// Logger returns the underlying logger.
func (h *Handler) Logger() zerolog.Logger {
	return h.logger
}

// HandleError logs a DriftError at error level.
func (h *Handler) HandleError(err *drifterrors.DriftError) {
	if err == nil {
		return
	}
	event := h.logger.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if err.Channel != "" {
		event = event.Str("channel", err.Channel)
	}
	if !err.Timestamp.IsZero() {
		event = event.Time("reported_at", err.Timestamp)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("drift error")
}

// HandlePanic logs a recovered panic at error level.
func (h *Handler) HandlePanic(err *drifterrors.PanicError) {
	if err == nil {
		return
	}
	event := h.logger.Error().
		Str("op", err.Op).
		Interface("panic", err.Value)
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("drift panic")
}

// HandleBoundaryError logs a failure caught by an error boundary.
func (h *Handler) HandleBoundaryError(err *drifterrors.BoundaryError) {
	if err == nil {
		return
	}
	event := h.logger.Error().
		Str("phase", err.Phase).
		Str("widget", err.Widget).
		Interface("recovered", err.Recovered)
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg(err.Error())
}
