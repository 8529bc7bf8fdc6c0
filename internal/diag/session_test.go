package diag

import (
	"testing"

	"ember/internal/source"
)

type abortSentinel struct{ code int }

// installTestExit makes AbortIfErrors observable by panicking instead of
// exiting the process.
func installTestExit(s *Session) {
	s.SetExit(func(code int) {
		panic(abortSentinel{code: code})
	})
}

func TestSessionNoErrorsNoAbort(t *testing.T) {
	sess := NewSession(10)
	installTestExit(sess)

	sess.AbortIfErrors() // must return normally
}

func TestSessionAbortOnError(t *testing.T) {
	sess := NewSession(10)
	installTestExit(sess)

	flushed := false
	sess.OnFlush(func(b *Bag) {
		flushed = true
		if b.Len() != 1 {
			t.Errorf("flush saw %d diagnostics, want 1", b.Len())
		}
	})

	ReportError(sess.Reporter(), SemaDuplicateLangItem, source.Span{}, "dup").Emit()

	defer func() {
		r := recover()
		sentinel, ok := r.(abortSentinel)
		if !ok {
			t.Fatalf("expected abort, recovered %v", r)
		}
		if sentinel.code != 1 {
			t.Errorf("abort exit code = %d, want 1", sentinel.code)
		}
		if !flushed {
			t.Error("flush hook must run before exit")
		}
	}()
	sess.AbortIfErrors()
	t.Fatal("AbortIfErrors must not return when errors were reported")
}

func TestSessionWarningsDoNotAbort(t *testing.T) {
	sess := NewSession(10)
	installTestExit(sess)

	ReportWarning(sess.Reporter(), SemaInfo, source.Span{}, "only a warning").Emit()
	sess.AbortIfErrors() // must return normally
}
