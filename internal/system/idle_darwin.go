//go:build darwin

package system

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ioregIdleProbe reads HIDIdleTime (nanoseconds) from the IOHIDSystem
// registry entry.
type ioregIdleProbe struct{}

func newIdleProbe() (idleProbe, error) {
	if _, err := exec.LookPath("ioreg"); err != nil {
		return nil, err
	}
	return ioregIdleProbe{}, nil
}

func (ioregIdleProbe) IdleDuration() (time.Duration, error) {
	out, err := exec.Command("ioreg", "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0, fmt.Errorf("ioreg: %w", err)
	}
	return parseHIDIdleTime(out)
}

func (ioregIdleProbe) Close() error { return nil }

func parseHIDIdleTime(out []byte) (time.Duration, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, `"HIDIdleTime"`) {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		ns, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad HIDIdleTime %q: %w", value, err)
		}
		return time.Duration(ns), nil
	}
	return 0, fmt.Errorf("HIDIdleTime not found")
}
