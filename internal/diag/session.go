package diag

import (
	"os"
)

// Session owns the diagnostic state of one compilation and the terminal
// abort path. Phases report through Reporter(); the driver calls
// AbortIfErrors() at phase boundaries.
type Session struct {
	bag   *Bag
	flush func(*Bag)
	exit  func(code int)
}

// NewSession creates a session whose bag holds at most maxDiags entries.
// The default abort path flushes nothing and calls os.Exit(1).
func NewSession(maxDiags int) *Session {
	return &Session{
		bag:  NewBag(maxDiags),
		exit: func(code int) { os.Exit(code) },
	}
}

// Bag exposes the accumulated diagnostics.
func (s *Session) Bag() *Bag {
	return s.bag
}

// Reporter returns the reporter phases should emit through.
func (s *Session) Reporter() Reporter {
	return BagReporter{Bag: s.bag}
}

// OnFlush installs a hook that renders the bag right before an abort.
// The CLI installs diagfmt rendering here.
func (s *Session) OnFlush(fn func(*Bag)) {
	s.flush = fn
}

// SetExit replaces the process-exit hook. Tests install a panicking hook
// to observe the abort path.
func (s *Session) SetExit(fn func(code int)) {
	if fn != nil {
		s.exit = fn
	}
}

// AbortIfErrors terminates the compilation when any error was reported.
// It does not return to the caller on the abort path. This is the one
// place in the pipeline where failure is terminal rather than an error
// value: by the time a phase asks, the diagnostics are already the answer.
func (s *Session) AbortIfErrors() {
	if !s.bag.HasErrors() {
		return
	}
	s.bag.Sort()
	if s.flush != nil {
		s.flush(s.bag)
	}
	s.exit(1)
}
