package datemath

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultLocationCacheSize bounds the number of distinct IANA zones kept resolved.
const DefaultLocationCacheSize = 64

// Locations resolves IANA timezone names, caching the loaded zones.
// Names that cannot be loaded resolve to the fallback location.
type Locations struct {
	fallback *time.Location
	cache    *lru.Cache[string, *time.Location]
}

// NewLocations creates a resolver. A nil fallback means time.Local.
func NewLocations(fallback *time.Location, size int) *Locations {
	if fallback == nil {
		fallback = time.Local
	}
	if size <= 0 {
		size = DefaultLocationCacheSize
	}
	cache, err := lru.New[string, *time.Location](size)
	if err != nil {
		// size is positive, lru.New cannot fail here
		panic(err)
	}
	return &Locations{fallback: fallback, cache: cache}
}

// Fallback returns the location used for empty or unknown names.
func (l *Locations) Fallback() *time.Location {
	return l.fallback
}

// Resolve returns the location named by timezone.
// The second result reports whether the name was recognised.
func (l *Locations) Resolve(timezone string) (*time.Location, bool) {
	name := strings.TrimSpace(timezone)
	if name == "" {
		return l.fallback, false
	}
	if loc, ok := l.cache.Get(name); ok {
		return loc, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return l.fallback, false
	}
	l.cache.Add(name, loc)
	return loc, true
}
