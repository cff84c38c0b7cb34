// Package equity tracks service demand over a bounded 24-hour sliding window
// so operators can spot load imbalances across locations and services. This is
// the only shared mutable state in the request path; a plain mutex guards it.
package equity

import (
	"strings"
	"sync"
	"time"

	"frontline/internal/classifier"
)

const windowSize = 24 * time.Hour

type entry struct {
	at       time.Time
	location string
	category classifier.Category
	priority classifier.Priority
}

// Tracker records demand entries and prunes anything older than the window on
// every write and read.
type Tracker struct {
	now func() time.Time

	mu      sync.Mutex
	entries []entry
}

func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{now: now}
}

// Record appends one demand entry.
func (t *Tracker) Record(location string, category classifier.Category, priority classifier.Priority) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, entry{
		at:       t.now(),
		location: strings.ToLower(strings.TrimSpace(location)),
		category: category,
		priority: priority,
	})
	t.pruneLocked()
}

// Summary is a point-in-time view of the demand window.
type Summary struct {
	TotalRequests24h int            `json:"total_requests_24h"`
	ByLocation       map[string]int `json:"by_location"`
	ByEmergencyType  map[string]int `json:"by_emergency_type"`
	ByPriority       map[string]int `json:"by_priority"`
	HighPriorityLoad int            `json:"high_priority_load"`
	WindowStart      time.Time      `json:"window_start"`
}

func (t *Tracker) Summarize() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pruneLocked()

	summary := Summary{
		ByLocation:      make(map[string]int),
		ByEmergencyType: make(map[string]int),
		ByPriority:      make(map[string]int),
		WindowStart:     t.now().Add(-windowSize),
	}

	for _, e := range t.entries {
		summary.TotalRequests24h++
		summary.ByLocation[e.location]++
		summary.ByEmergencyType[string(e.category)]++
		summary.ByPriority[string(e.priority)]++
		if e.priority == classifier.PriorityHigh {
			summary.HighPriorityLoad++
		}
	}

	return summary
}

func (t *Tracker) pruneLocked() {
	cutoff := t.now().Add(-windowSize)
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.at.After(cutoff) {
			kept = append(kept, e)
		}
	}
	t.entries = kept
}
