package system

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// GetHostSummary returns general host information
func GetHostSummary() (*HostSummary, error) {
	hostInfo, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}

	users, err := host.Users()
	if err != nil {
		users = nil // Continue without user info
	}

	var user string
	if len(users) > 0 {
		user = users[0].User
	}

	cpuModel := "Unknown CPU"
	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		cpuModel = fmt.Sprintf("%s (%v)", cpuInfo[0].ModelName, cpuInfo[0].Cores)
		if len(cpuInfo) > 1 {
			cpuModel += fmt.Sprintf(" x%v", len(cpuInfo))
		}
	}

	var memTotal uint64
	if memStat, err := mem.VirtualMemory(); err == nil {
		memTotal = memStat.Total
	}

	return &HostSummary{
		User:     user,
		Hostname: hostInfo.Hostname,
		OS:       fmt.Sprintf("%s %s %s", hostInfo.Platform, hostInfo.PlatformVersion, hostInfo.KernelArch),
		Kernel:   fmt.Sprintf("%s %s", hostInfo.OS, hostInfo.KernelVersion),
		CPU:      cpuModel,
		MemTotal: memTotal,
	}, nil
}

// UserHost formats the summary as user@hostname, or just hostname.
func (h *HostSummary) UserHost() string {
	if h.User != "" {
		return h.User + "@" + h.Hostname
	}
	return h.Hostname
}
