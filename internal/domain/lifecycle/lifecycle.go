// Package lifecycle holds shared shutdown timing constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown of long-lived
// resources (HTTP server, database pool, publishers).
const DefaultTimeout = 10 * time.Second
