package system

import "time"

// Sample is a single snapshot of the counters the overlay displays.
type Sample struct {
	Taken      time.Time
	CPUPercent float64   // Aggregate, 0-100
	PerCPU     []float64 // Per logical core, 0-100
	MemUsed    uint64    // Bytes
	MemTotal   uint64    // Bytes
	DiskRead   uint64    // Cumulative bytes read
	DiskWrite  uint64    // Cumulative bytes written
}

// HostSummary is static host information logged at startup.
type HostSummary struct {
	User     string
	Hostname string
	OS       string
	Kernel   string
	CPU      string
	MemTotal uint64
}
