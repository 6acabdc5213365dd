//go:build windows

package system

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetLastInputInfo = user32.NewProc("GetLastInputInfo")
	procGetTickCount     = kernel32.NewProc("GetTickCount")
)

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

type win32IdleProbe struct{}

func newIdleProbe() (idleProbe, error) {
	if err := procGetLastInputInfo.Find(); err != nil {
		return nil, err
	}
	if err := procGetTickCount.Find(); err != nil {
		return nil, err
	}
	return win32IdleProbe{}, nil
}

func (win32IdleProbe) IdleDuration() (time.Duration, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}
	ok, _, callErr := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		return 0, fmt.Errorf("GetLastInputInfo: %w", callErr)
	}
	now, _, _ := procGetTickCount.Call()
	// Both are 32-bit tick counts; unsigned subtraction handles wraparound.
	return time.Duration(uint32(now)-info.dwTime) * time.Millisecond, nil
}

func (win32IdleProbe) Close() error { return nil }
