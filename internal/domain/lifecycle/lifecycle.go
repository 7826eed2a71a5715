// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as draining
// the HTTP server or pinging the database.
const DefaultTimeout = 10 * time.Second
