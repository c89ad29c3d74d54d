// Package lifecycle holds process lifecycle constants shared by the
// infrastructure and delivery layers.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks such as database pings
// and graceful HTTP shutdown.
const DefaultTimeout = 10 * time.Second
