package solve_test

import (
	"testing"

	"github.com/decred/slog"

	"github.com/katalvlaran/gf2/solve"
)

type testLog struct {
	*testing.T
}

func (t *testLog) Write(b []byte) (int, error) {
	t.Logf("%s", b)
	return len(b), nil
}

// useTestLogger sets the package logger to a backend that writes trace-level
// logs to the test log. The returned function restores the disabled logger.
//
// Due to the use of a global logger, tests calling this must not run in
// parallel.
func useTestLogger(t *testing.T) func() {
	backend := slog.NewBackend(&testLog{T: t})
	l := backend.Logger("TEST")
	l.SetLevel(slog.LevelTrace)
	solve.UseLogger(l)
	return func() {
		solve.UseLogger(slog.Disabled)
	}
}
