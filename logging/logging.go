// Package logging provides the debug-trace sink used by the translation
// engine: a thin wrapper over the package-level debug logger of
// prometheus/common/log.
package logging

import (
	plog "github.com/prometheus/common/log"
)

// Debugf formats and emits a debug trace the way pipeline, statusmap,
// alloc and the demo shim do for unmapped status combinations, dispatch
// fallbacks and allocator misuse or failure.
func Debugf(format string, args ...interface{}) {
	plog.Debugf(format, args...)
}
