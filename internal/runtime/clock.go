// SPDX-License-Identifier: MPL-2.0

package runtime

import "time"

type (
	// Clock abstracts the time source used for run timing.
	Clock interface {
		Now() time.Time
	}

	// RealClock implements Clock using the system time.
	RealClock struct{}
)

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}
