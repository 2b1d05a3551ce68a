package wordhash_test

import (
	"testing"

	"github.com/decred/slog"

	"github.com/katalvlaran/gf2/solve"
	"github.com/katalvlaran/gf2/wordhash"
)

type testLog struct {
	*testing.T
}

func (t *testLog) Write(b []byte) (int, error) {
	t.Logf("%s", b)
	return len(b), nil
}

// useTestLogger routes both wordhash and solve logging to the test log at
// debug level and returns a function restoring the disabled loggers.
func useTestLogger(t *testing.T) func() {
	backend := slog.NewBackend(&testLog{T: t})
	l := backend.Logger("TEST")
	l.SetLevel(slog.LevelDebug)
	wordhash.UseLogger(l)
	solve.UseLogger(l)
	return func() {
		wordhash.UseLogger(slog.Disabled)
		solve.UseLogger(slog.Disabled)
	}
}
