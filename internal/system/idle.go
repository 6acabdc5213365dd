package system

import "time"

// idleProbe reports time since the last global input event.
type idleProbe interface {
	IdleDuration() (time.Duration, error)
	Close() error
}
