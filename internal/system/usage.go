package system

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Provider reads resource counters and the global input idle time.
type Provider struct {
	idle idleProbe
}

// NewProvider opens the platform idle probe. Counters need no setup.
func NewProvider() (*Provider, error) {
	probe, err := newIdleProbe()
	if err != nil {
		return nil, fmt.Errorf("failed to open idle probe: %w", err)
	}
	// Prime the CPU counters so the first sample measures since startup
	// rather than returning zero.
	_, _ = cpu.Percent(0, false)
	_, _ = cpu.Percent(0, true)
	return &Provider{idle: probe}, nil
}

// Snapshot returns current CPU, memory and disk counters. CPU percentages
// cover the time since the previous call.
func (p *Provider) Snapshot() (*Sample, error) {
	total, err := cpu.Percent(0, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU usage: %w", err)
	}
	perCPU, err := cpu.Percent(0, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get per-CPU usage: %w", err)
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}

	counters, err := disk.IOCounters()
	if err != nil {
		return nil, fmt.Errorf("failed to get disk counters: %w", err)
	}
	read, write := SumDiskCounters(counters)

	var totalPercent float64
	if len(total) > 0 {
		totalPercent = total[0]
	}

	return &Sample{
		Taken:      time.Now(),
		CPUPercent: totalPercent,
		PerCPU:     perCPU,
		MemUsed:    memStat.Used,
		MemTotal:   memStat.Total,
		DiskRead:   read,
		DiskWrite:  write,
	}, nil
}

// IdleDuration returns the time since the last keyboard or mouse input
// anywhere on the desktop.
func (p *Provider) IdleDuration() (time.Duration, error) {
	d, err := p.idle.IdleDuration()
	if err != nil {
		return 0, fmt.Errorf("failed to get idle duration: %w", err)
	}
	return d, nil
}

// Close releases the idle probe.
func (p *Provider) Close() error {
	return p.idle.Close()
}

// SumDiskCounters totals read and write bytes over all devices, skipping
// loop devices.
func SumDiskCounters(counters map[string]disk.IOCountersStat) (read, write uint64) {
	for name, st := range counters {
		if strings.HasPrefix(name, "loop") {
			continue
		}
		read += st.ReadBytes
		write += st.WriteBytes
	}
	return read, write
}

func properUnitHelper(bytes uint64, pow uint8, unit string) string {
	quotient := bytes >> pow
	temp := bytes & ((1 << pow) - 1)
	temp = ((temp * 10) + ((1 << pow) >> 1)) >> pow
	if temp == 10 {
		temp = 0
		quotient += 1
	}
	return strconv.FormatUint(quotient, 10) +
		"." + strconv.FormatUint(temp, 10) + " " + unit
}

// ProperUnit converts bytes to human readable format
func ProperUnit(byteNum uint64) (formatted string) {
	if byteNum >= 1<<40 { // TiB
		return properUnitHelper(byteNum, 40, "TiB")
	} else if byteNum >= 1<<30 { // GiB
		return properUnitHelper(byteNum, 30, "GiB")
	} else if byteNum >= 1<<20 { // MiB
		return properUnitHelper(byteNum, 20, "MiB")
	} else if byteNum >= 1<<10 { // KiB
		return properUnitHelper(byteNum, 10, "KiB")
	}
	return strconv.FormatUint(byteNum, 10) + " B"
}

// Float2string converts float to string with specified precision
func Float2string(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
