package quickadd

import (
	"strings"
	"time"
)

// Priority is the urgency level of a task.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityNone:   "none",
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
}

// String returns the lowercase level name.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return priorityNames[PriorityNone]
}

// Valid reports whether p is one of the four defined levels.
func (p Priority) Valid() bool {
	return p >= PriorityNone && p <= PriorityHigh
}

// ParsePriority maps a level name (none, low, med, medium, high) to a Priority.
// Unknown names map to PriorityNone.
func ParsePriority(name string) Priority {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "high":
		return PriorityHigh
	case "med", "medium":
		return PriorityMedium
	case "low":
		return PriorityLow
	default:
		return PriorityNone
	}
}

// ParsedTask is the structured result of a quick-add line.
type ParsedTask struct {
	Title    string
	DueAt    *time.Time // nil when no date or time was recognised
	Priority Priority
	Tags     []string
}

// ChipDates are the precomputed one-tap due dates.
type ChipDates struct {
	Today    time.Time
	Tonight  time.Time
	Tomorrow time.Time
	NextWeek time.Time
}

// Chip names accepted by ChipDates.Pick.
const (
	ChipToday    = "today"
	ChipTonight  = "tonight"
	ChipTomorrow = "tomorrow"
	ChipNextWeek = "next_week"
)

// Pick returns the date for the named chip.
func (c ChipDates) Pick(name string) (time.Time, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ChipToday:
		return c.Today, true
	case ChipTonight:
		return c.Tonight, true
	case ChipTomorrow:
		return c.Tomorrow, true
	case ChipNextWeek, "nextweek", "next-week":
		return c.NextWeek, true
	}
	return time.Time{}, false
}
