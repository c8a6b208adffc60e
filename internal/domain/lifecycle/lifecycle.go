// Package lifecycle defines shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and shutdown hooks for external resources.
const DefaultTimeout = 10 * time.Second
