// Package status decides whether the service runs its enhanced (data-backed)
// or degraded (pure rule-based) pipeline, based on a cached reachability probe.
package status

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	ModeEnhanced = "enhanced"
	ModeDegraded = "degraded"

	defaultTTL      = 60 * time.Second
	defaultProbeURL = "https://www.google.com"
	probeTimeout    = 3 * time.Second
)

// SystemStatus is the value passed into each pipeline call. Stages never reach
// back into the checker.
type SystemStatus struct {
	Mode              string    `json:"mode"`
	InternetAvailable bool      `json:"internet_available"`
	LastChecked       time.Time `json:"last_checked"`
}

// Checker caches probe results for a TTL. The zero value is not usable; build
// one with NewChecker.
type Checker struct {
	probe func() bool
	ttl   time.Duration
	now   func() time.Time

	mu     sync.Mutex
	cached SystemStatus
	valid  bool
}

// Option customizes a Checker; used by tests to inject probes and clocks.
type Option func(*Checker)

func WithProbe(probe func() bool) Option {
	return func(c *Checker) { c.probe = probe }
}

func WithTTL(ttl time.Duration) Option {
	return func(c *Checker) { c.ttl = ttl }
}

func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		probe: defaultProbe,
		ttl:   defaultTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Status returns the cached status, refreshing lazily once the TTL expires.
func (c *Checker) Status() SystemStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.cached.LastChecked) < c.ttl {
		return c.cached
	}
	return c.refreshLocked()
}

// Refresh forces a probe regardless of TTL.
func (c *Checker) Refresh() SystemStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked()
}

func (c *Checker) refreshLocked() SystemStatus {
	reachable := c.probe()

	mode := ModeDegraded
	if reachable {
		mode = ModeEnhanced
	}

	c.cached = SystemStatus{
		Mode:              mode,
		InternetAvailable: reachable,
		LastChecked:       c.now(),
	}
	c.valid = true
	return c.cached
}

func defaultProbe() bool {
	url := strings.TrimSpace(os.Getenv("FRONTLINE_PROBE_URL"))
	if url == "" {
		url = defaultProbeURL
	}

	client := &http.Client{Timeout: probeTimeout}
	resp, err := client.Head(url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}
