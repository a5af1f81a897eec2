package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestBadgeErrorString(t *testing.T) {
	err := &BadgeError{
		Op:   "badge.Layout",
		Kind: KindPrecondition,
		Err:  ErrNoParent,
	}
	want := "badge.Layout [precondition]: badge has no parent"
	if got := err.Error(); got != want {
		t.Errorf("BadgeError.Error() = %q, want %q", got, want)
	}
}

func TestBadgeErrorUnwrap(t *testing.T) {
	err := &BadgeError{Op: "badge.Layout", Kind: KindPrecondition, Err: ErrNoParent}
	if !stderrors.Is(err, ErrNoParent) {
		t.Error("errors.Is should see through BadgeError to ErrNoParent")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPrecondition, "precondition"},
		{KindFont, "font"},
		{KindRender, "render"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "compositor.Paint"
	if got, want := err.Error(), "panic in compositor.Paint: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *BadgeError
	prev := SetHandler(&testHandler{onError: func(err *BadgeError) { captured = err }})
	defer SetHandler(prev)

	Report(&BadgeError{Op: "test.op", Kind: KindFont, Err: stderrors.New("missing")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	prev := SetHandler(&testHandler{onError: func(*BadgeError) { called = true }})
	defer SetHandler(prev)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})}

	h.HandleError(&BadgeError{Op: "badge.Layout", Kind: KindPrecondition, Err: ErrNoParent})
	out := buf.String()
	if !strings.Contains(out, "WARN") {
		t.Errorf("precondition should log at warn level, got %q", out)
	}
	if !strings.Contains(out, "badge.Layout") {
		t.Errorf("log output should contain the op, got %q", out)
	}

	buf.Reset()
	h.HandleError(&BadgeError{Op: "raster.Encode", Kind: KindRender, Err: stderrors.New("disk full")})
	if out := buf.String(); !strings.Contains(out, "ERRO") {
		t.Errorf("render errors should log at error level, got %q", out)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "compositor.Paint", Value: "boom"})
	if out := buf.String(); !strings.Contains(out, "boom") {
		t.Errorf("panic log should contain the value, got %q", out)
	}
}

type testHandler struct {
	onError func(*BadgeError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *BadgeError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestReportCapturesStack(t *testing.T) {
	var captured *BadgeError
	prev := SetHandler(HandlerFunc(func(err *BadgeError) { captured = err }))
	defer SetHandler(prev)

	Report(&BadgeError{Op: "test.stack", Kind: KindRender, Err: stderrors.New("x")})
	if captured == nil || !strings.Contains(captured.StackTrace, "TestReportCapturesStack") {
		t.Fatalf("stack should start at the caller, got %+v", captured)
	}

	Report(&BadgeError{Op: "test.stack", StackTrace: "kept"})
	if captured.StackTrace != "kept" {
		t.Errorf("existing stack replaced with %q", captured.StackTrace)
	}
}

func TestHandlerFuncPanics(t *testing.T) {
	var got []*BadgeError
	prev := SetHandler(HandlerFunc(func(err *BadgeError) { got = append(got, err) }))
	defer SetHandler(prev)

	func() {
		defer Recover("test.func")
		panic("boom")
	}()

	if len(got) != 1 {
		t.Fatalf("got %d reports, want 1", len(got))
	}
	if got[0].Kind != KindPanic || got[0].Op != "test.func" {
		t.Errorf("report = %+v", got[0])
	}
	var pe *PanicError
	if !stderrors.As(got[0], &pe) || pe.Value != "boom" {
		t.Errorf("report should wrap the PanicError, got %v", got[0].Err)
	}
}
