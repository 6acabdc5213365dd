package system

import (
	"testing"

	"github.com/shirou/gopsutil/v4/disk"
)

func TestSumDiskCounters(t *testing.T) {
	counters := map[string]disk.IOCountersStat{
		"sda":   {ReadBytes: 1000, WriteBytes: 10},
		"nvme0": {ReadBytes: 2000, WriteBytes: 20},
		"loop0": {ReadBytes: 999999, WriteBytes: 999999},
	}
	read, write := SumDiskCounters(counters)
	if read != 3000 {
		t.Errorf("read = %d, want 3000", read)
	}
	if write != 30 {
		t.Errorf("write = %d, want 30", write)
	}

	read, write = SumDiskCounters(nil)
	if read != 0 || write != 0 {
		t.Errorf("empty counters = %d/%d, want 0/0", read, write)
	}
}

func TestProperUnit(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{(1 << 30) - 1, "1024.0 MiB"},
		{16 << 30, "16.0 GiB"},
		{3 << 40, "3.0 TiB"},
	}
	for _, tt := range tests {
		if got := ProperUnit(tt.in); got != tt.want {
			t.Errorf("ProperUnit(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFloat2string(t *testing.T) {
	if got := Float2string(12.345, 1); got != "12.3" {
		t.Errorf("Float2string() = %q, want 12.3", got)
	}
	if got := Float2string(1.907, 2); got != "1.91" {
		t.Errorf("Float2string() = %q, want 1.91", got)
	}
}
