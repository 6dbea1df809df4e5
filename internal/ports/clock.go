// Package ports defines the interfaces between the timer core and the
// terminal, the clock and the operating system.
package ports

import "time"

// Clock supplies the current time and the tick pacing.
// This is a driven port (implemented by adapters).
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives once d has elapsed.
	After(d time.Duration) <-chan time.Time
}
