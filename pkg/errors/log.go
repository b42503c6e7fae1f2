package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[arbor error] %s [%s]", err.Op, err.Kind)
		if err.Node != "" {
			fmt.Fprintf(os.Stderr, " node=%s", err.Node)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(os.Stderr, "[arbor error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[arbor panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[arbor panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// SlogHandler is a Handler that forwards errors to a slog.Logger.
type SlogHandler struct {
	// Logger is the destination logger. If nil, slog.Default() is used.
	Logger *slog.Logger
}

func (h *SlogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs an Error at error level with structured attributes.
func (h *SlogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Node != "" {
		attrs = append(attrs, slog.String("node", err.Node))
	}
	if err.Err != nil {
		attrs = append(attrs, slog.String("error", err.Err.Error()))
	}
	h.logger().Error("arbor error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *SlogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.logger().Error("arbor panic",
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	)
}
