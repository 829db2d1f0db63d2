// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start/stop hook.
const DefaultTimeout = 10 * time.Second
