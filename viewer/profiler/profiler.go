// Package profiler logs frame pacing and heap statistics for the viewer's
// render loop.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler accumulates per-frame timings and logs a summary line at a
// fixed interval.
type Profiler struct {
	frameCount     int
	worstFrame     time.Duration
	lastFrame      time.Time
	lastReport     time.Time
	reportInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a Profiler reporting once per second.
//
// Returns:
//   - *Profiler: the new profiler
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		lastFrame:      now,
		lastReport:     now,
		reportInterval: time.Second,
	}
}

// Tick records one presented frame. When the report interval has elapsed
// it logs FPS, the worst frame time in the window, heap size, and the
// allocation rate, then resets the window.
//
// Returns:
//   - bool: true if a report was logged this tick
func (p *Profiler) Tick() bool {
	now := time.Now()
	frameTime := now.Sub(p.lastFrame)
	p.lastFrame = now
	p.frameCount++
	if frameTime > p.worstFrame {
		p.worstFrame = frameTime
	}

	elapsed := now.Sub(p.lastReport)
	if elapsed < p.reportInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	log.Printf("[profiler] fps=%.1f worst_frame=%.2fms heap=%.1fMB alloc_rate=%.2fMB/s",
		fps, float64(p.worstFrame.Microseconds())/1000.0, heapMB, allocRateMB)

	p.frameCount = 0
	p.worstFrame = 0
	p.lastReport = now
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
