package randsource

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger replaces the logger used by this package.
//
// The default is a nop logger. The only thing this package ever logs is a
// warning when GetSeed falls back from the system entropy source to a
// time-based seed.
//
// Passing nil restores the nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
