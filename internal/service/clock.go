// internal/service/clock.go
package service

import "time"

// Clock abstracts time.Now so services can be tested on fixed days.
type Clock func() time.Time

// todayString renders the clock's current UTC day. All practice dates and
// daily logs are keyed by this format.
func todayString(clock Clock) string {
	return clock().UTC().Format("2006-01-02")
}
