package overlay

import (
	"fmt"
	"strings"
	"time"

	"statoverlay/internal/system"
)

const mib = 1024 * 1024

// DiskPlaceholder is shown until two samples exist.
const DiskPlaceholder = "Disk: -/- MB/s"

// Labels is the text of the four overlay labels. CPU spans two lines.
type Labels struct {
	CPU    string
	Memory string
	Disk   string
	Status string
}

// Lines returns the non-empty label texts in display order.
func (l Labels) Lines() []string {
	out := make([]string, 0, 4)
	for _, s := range []string{l.CPU, l.Memory, l.Disk, l.Status} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func FormatCPU(s *system.Sample) string {
	cores := make([]string, len(s.PerCPU))
	for i, p := range s.PerCPU {
		cores[i] = system.Float2string(p, 1)
	}
	return fmt.Sprintf("CPU:  %s%%\nCPUs: [%s]%%",
		system.Float2string(s.CPUPercent, 1), strings.Join(cores, ", "))
}

func FormatMemory(s *system.Sample) string {
	return fmt.Sprintf("Memory: %.2f/%.2f MB", float64(s.MemUsed)/mib, float64(s.MemTotal)/mib)
}

// FormatDisk renders throughput between prev and cur, or the placeholder
// when there is no previous sample.
func FormatDisk(prev, cur *system.Sample, interval time.Duration) string {
	if prev == nil {
		return DiskPlaceholder
	}
	read, write := Throughput(prev, cur, interval)
	return fmt.Sprintf("Disk: %.2f/%.2f MB/s", read, write)
}

// Throughput returns read and write MiB per second over interval.
// Counters that went backwards count as zero.
func Throughput(prev, cur *system.Sample, interval time.Duration) (read, write float64) {
	secs := interval.Seconds()
	if secs <= 0 {
		secs = 1
	}
	return rate(prev.DiskRead, cur.DiskRead, secs), rate(prev.DiskWrite, cur.DiskWrite, secs)
}

func rate(prev, cur uint64, secs float64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur-prev) / mib / secs
}
