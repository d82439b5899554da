// Package logx wraps zap behind a package-level logger, in the style of
// nicolasmd87-gopher3D/internal/engine's logger.Log.Error("...", zap.String(...), zap.Error(err))
// call sites.
package logx

import "go.uber.org/zap"

// Log is the process-wide structured logger. Init replaces it; until Init is
// called it is a no-op logger so packages can log unconditionally.
var Log *zap.Logger = zap.NewNop()

// Init installs a development logger (human-readable console output,
// caller line) as Log. Intended to be called once from main.
func Init() error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	Log = logger
	return nil
}

// Sync flushes any buffered log entries. Call it in a deferred statement in
// main; the returned error from stderr/stdout syncing is usually safe to
// ignore on Linux but is returned for callers that care.
func Sync() error {
	return Log.Sync()
}
