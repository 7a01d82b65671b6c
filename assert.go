package anchor

import "fmt"

// DebugChecks toggles development-time usage assertions: cross-scene links,
// leaders composited after their followers, and anchors that require a
// leader size when none is known. These are programmer errors; release
// binaries may set this false, in which case behavior is undefined when a
// contract is violated.
var DebugChecks = true

// assertf panics with a formatted message if cond is false and DebugChecks
// is enabled.
func assertf(cond bool, format string, args ...any) {
	if !cond && DebugChecks {
		panic(fmt.Sprintf("anchor: "+format, args...))
	}
}
