// Package debounce suppresses duplicate notifications for the same alert id.
package debounce

import (
	"context"
	"sync"
	"time"

	"guardian/internal/domain/service"
)

// Memory keeps the last processing time of each alert id in process memory.
// Expired entries are swept lazily on access and by Sweep.
type Memory struct {
	mu        sync.Mutex
	windowMs  int64
	seen      map[string]int64
	lastSweep int64
}

var (
	_ service.Debouncer = (*Memory)(nil)
	_ service.Sweeper   = (*Memory)(nil)
)

func NewMemory(window time.Duration) *Memory {
	return &Memory{
		windowMs: window.Milliseconds(),
		seen:     make(map[string]int64),
	}
}

func (m *Memory) ShouldProcess(_ context.Context, alertID string, nowMs int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if nowMs-m.lastSweep >= m.windowMs {
		m.sweepLocked(nowMs)
	}

	if last, ok := m.seen[alertID]; ok && nowMs-last < m.windowMs {
		return false
	}

	m.seen[alertID] = nowMs

	return true
}

func (m *Memory) Sweep(nowMs int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sweepLocked(nowMs)
}

func (m *Memory) sweepLocked(nowMs int64) int {
	dropped := 0
	for id, last := range m.seen {
		if nowMs-last >= m.windowMs {
			delete(m.seen, id)
			dropped++
		}
	}
	m.lastSweep = nowMs

	return dropped
}

// Len returns the number of tracked alert ids.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.seen)
}
