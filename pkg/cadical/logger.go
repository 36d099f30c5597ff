package cadical

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu  sync.RWMutex
	pkgLogger = zap.NewNop()
)

// SetLogger installs a logger for debug traces of solver operations. The
// package defaults to a no-op logger; passing nil restores it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	pkgLogger = l
	loggerMu.Unlock()
}

func logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return pkgLogger
}
