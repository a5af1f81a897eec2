package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex

	// DefaultHandler receives every report. Change it with SetHandler.
	DefaultHandler ErrorHandler = &LogHandler{}
)

// SetHandler installs h and returns the handler it replaced. Nil restores a
// LogHandler writing through log.Default().
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := DefaultHandler
	DefaultHandler = h
	return prev
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// HandlerFunc adapts a function to ErrorHandler. Panics arrive as a
// BadgeError of KindPanic wrapping the PanicError.
type HandlerFunc func(*BadgeError)

func (f HandlerFunc) HandleError(err *BadgeError) { f(err) }

func (f HandlerFunc) HandlePanic(err *PanicError) {
	f(&BadgeError{
		Op:         err.Op,
		Kind:       KindPanic,
		Err:        err,
		StackTrace: err.StackTrace,
		Timestamp:  err.Timestamp,
	})
}

// Report stamps err with the current time and the caller's stack, unless
// already set, and passes it to the installed handler.
func Report(err *BadgeError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.StackTrace == "" {
		err.StackTrace = captureStack(3)
	}
	currentHandler().HandleError(err)
}

// ReportPanic passes a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandlePanic(err)
}

// Recover reports a panic in progress as a PanicError for op. Call it
// deferred:
//
//	defer errors.Recover("compositor.Paint")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: captureStack(3),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame, stopping at the goroutine entry point.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function == "runtime.goexit" || frame.Function == "runtime.main" {
			break
		}
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
