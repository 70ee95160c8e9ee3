// Package lifecycle holds shared constants for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as
// database pings and HTTP server drain.
const DefaultTimeout = 10 * time.Second
