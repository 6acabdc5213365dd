//go:build !linux && !windows && !darwin

package system

import (
	"errors"
	"runtime"
)

func newIdleProbe() (idleProbe, error) {
	return nil, errors.New("idle detection is not supported on " + runtime.GOOS)
}
