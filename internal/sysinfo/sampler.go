// Package sysinfo reads live system telemetry through gopsutil and keeps
// a bounded sample history for the widget feed.
package sysinfo

import (
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/hiudyy/DashLayer/internal/model"
)

// CPU usage is only meaningful as a delta between two refresh points, so
// a sample takes two readings this far apart.
const defaultSampleDelay = 100 * time.Millisecond

// Sampler owns the system probe. The probe keeps per-process counter
// state between refreshes (re-probing is cheaper than re-initializing),
// so the lock is held for the whole two-refresh sequence.
type Sampler struct {
	mu    sync.Mutex
	delay time.Duration
}

func NewSampler() *Sampler {
	return &Sampler{delay: defaultSampleDelay}
}

// Sample refreshes the probe twice and aggregates CPU, memory, disk and
// temperature readings. Individual probe failures degrade to zero/absent
// values rather than failing the whole snapshot.
func (s *Sampler) Sample() model.SystemInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	// First refresh establishes the counter baseline; the second reading
	// is the one reported.
	_, _ = cpu.Percent(0, false)
	time.Sleep(s.delay)

	var info model.SystemInfo
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		info.CPUUsage = pct[0]
	}

	if v, err := mem.VirtualMemory(); err == nil {
		info.MemoryTotal = v.Total
		info.MemoryUsed = v.Used
		info.MemoryUsage = percent(v.Used, v.Total)
	}

	// Disk enumeration is not part of the refreshed counters; take a
	// fresh listing and report the first partition only.
	if parts, err := disk.Partitions(false); err == nil && len(parts) > 0 {
		if u, err := disk.Usage(parts[0].Mountpoint); err == nil {
			used := u.Total - u.Free
			info.DiskTotal = u.Total
			info.DiskUsed = used
			info.DiskUsage = percent(used, u.Total)
		}
	}

	if sensors, err := host.SensorsTemperatures(); err == nil {
		info.CPUTemperature = pickCPUTemperature(sensors)
	}

	return info
}

// percent returns used/total*100, or 0 when total is 0 (probe failure).
func percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100.0
}

// pickCPUTemperature selects the first sensor whose label looks like a
// CPU sensor. Heuristic and locale-dependent; nil when nothing matches.
func pickCPUTemperature(sensors []host.TemperatureStat) *float64 {
	for _, sensor := range sensors {
		if isCPUSensor(sensor.SensorKey) {
			t := sensor.Temperature
			return &t
		}
	}
	return nil
}

func isCPUSensor(key string) bool {
	label := strings.ToLower(key)
	return strings.Contains(label, "cpu") ||
		strings.Contains(label, "core") ||
		strings.Contains(label, "package")
}
