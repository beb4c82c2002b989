package observability

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats describes the hub process for the debug endpoint.
type ProcessStats struct {
	PID        int32     `json:"pid"`
	Status     string    `json:"status"`
	CPUPercent float64   `json:"cpu_percent"`
	MemPercent float32   `json:"mem_percent"`
	RSSMb      uint64    `json:"rss_mb"`
	AllocMemMb uint64    `json:"alloc_mem_mb"`
	NumGC      uint32    `json:"num_gc"`
	Goroutines int       `json:"goroutines"`
	Uptime     string    `json:"uptime"`
	At         time.Time `json:"at"`
}

var startedAt = time.Now()

// CollectProcessStats reads OS level figures through gopsutil and Go
// runtime figures from the memory statistics.
func CollectProcessStats() (ProcessStats, error) {
	pid := int32(os.Getpid())
	p, err := process.NewProcess(pid)
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := p.Status()
	if err != nil {
		return ProcessStats{}, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return ProcessStats{
		PID:        pid,
		Status:     status,
		CPUPercent: cpu,
		MemPercent: ram,
		RSSMb:      mem.RSS / 1024 / 1024,
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
		Uptime:     time.Since(startedAt).Truncate(time.Second).String(),
		At:         time.Now().UTC(),
	}, nil
}
