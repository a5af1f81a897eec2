package testing

import (
	"sync"

	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/errors"
)

// RecordingRenderer is a badge.Renderer that keeps every commit.
type RecordingRenderer struct {
	mu      sync.Mutex
	commits []badge.Commit
}

// Commit records c.
func (r *RecordingRenderer) Commit(c badge.Commit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits = append(r.commits, c)
}

// Commits returns a copy of the recorded commits, oldest first.
func (r *RecordingRenderer) Commits() []badge.Commit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]badge.Commit, len(r.commits))
	copy(out, r.commits)
	return out
}

// Len returns the number of recorded commits.
func (r *RecordingRenderer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commits)
}

// Last returns the most recent commit, or the zero Commit if none.
func (r *RecordingRenderer) Last() badge.Commit {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commits) == 0 {
		return badge.Commit{}
	}
	return r.commits[len(r.commits)-1]
}

// Reset drops the recorded commits.
func (r *RecordingRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits = nil
}

// ErrorRecorder is an errors.ErrorHandler that keeps reported errors.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.BadgeError
	panics []*errors.PanicError
}

// InstallErrorRecorder makes a new ErrorRecorder the global error handler
// until the test ends.
func InstallErrorRecorder(t Cleanup) *ErrorRecorder {
	t.Helper()
	rec := &ErrorRecorder{}
	prev := errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return rec
}

// HandleError records err.
func (r *ErrorRecorder) HandleError(err *errors.BadgeError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic records err.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the recorded errors.
func (r *ErrorRecorder) Errors() []*errors.BadgeError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*errors.BadgeError, len(r.errs))
	copy(out, r.errs)
	return out
}

// Panics returns the recorded panics.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*errors.PanicError, len(r.panics))
	copy(out, r.panics)
	return out
}

// Count returns how many recorded errors have the given kind.
func (r *ErrorRecorder) Count(kind errors.ErrorKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, err := range r.errs {
		if err.Kind == kind {
			n++
		}
	}
	return n
}
