package time

import (
	"strings"
	"sync"
	"time"
	// embedded zone database so lookups work on hosts without /usr/share/zoneinfo
	_ "time/tzdata"

	"github.com/amirhossein-jamali/timespan/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
// and a cached time zone database
type RealTimeProvider struct {
	mu        sync.RWMutex
	locations map[string]*time.Location
}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{
		locations: make(map[string]*time.Location),
	}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// LoadLocation returns a cached location or loads and caches it
func (p *RealTimeProvider) LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}

	p.mu.RLock()
	if loc, ok := p.locations[name]; ok {
		p.mu.RUnlock()
		return loc, nil
	}
	p.mu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.locations[name] = loc
	p.mu.Unlock()

	return loc, nil
}
