package randsource

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"go.uber.org/zap"
)

// cryptoReader reads seed material from the system entropy source.
//
// It's a package variable so tests can inject failures.
var cryptoReader func(p []byte) (int, error) = rand.Read

// GetSeed returns a seed for a pseudo-random generator.
//
// It tries to use crypto/rand to read a uint64, and falls back to the
// current time if that fails for whatever reason, so it never errors.
// The fallback seed is lower quality and the fallback is reported as a
// warning through the package logger (see SetLogger).
func GetSeed() uint64 {
	buf := make([]byte, 8)
	if _, err := cryptoReader(buf); err != nil {
		logger.Warn(
			"randsource: entropy source unavailable, using time-based seed",
			zap.Error(err),
		)
		return uint64(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint64(buf)
}
