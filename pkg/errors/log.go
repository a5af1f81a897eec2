package errors

import (
	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes structured log entries.
type LogHandler struct {
	// Logger receives the entries. Nil uses log.Default().
	Logger *log.Logger
	// Verbose adds stack traces to the output.
	Verbose bool
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// HandleError logs a BadgeError. Precondition violations are warnings, every
// other kind is an error.
func (h *LogHandler) HandleError(err *BadgeError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	if err.Kind == KindPrecondition {
		h.logger().Warn("badge precondition violated", kv...)
		return
	}
	h.logger().Error("badge error", kv...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error("badge panic", kv...)
}
