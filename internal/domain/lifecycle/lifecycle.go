// Package lifecycle defines shared timeouts for application startup and
// shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook may block before the
// application gives up on it.
const DefaultTimeout = 10 * time.Second
