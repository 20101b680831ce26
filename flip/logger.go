package flip

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr holds the active logger. The default discards everything.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger routes the engine's debug output to l. Flips log when they start,
// when a start attempt is rejected, and when they commit. Pass nil to go
// silent again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

func Logger() *zap.Logger {
	return loggerPtr.Load()
}
