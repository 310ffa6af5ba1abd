// Package quickadd turns a free-text quick-add line into a structured task.
//
// Recognised syntax, applied in this order:
//
//	!high !med !medium !low      priority (first marker only, needs whitespace before it)
//	#word                        tags, every occurrence
//	today tonight tomorrow       date phrases, at most one is applied
//	next <weekday>
//	in <N> <min|h|d...>
//	3pm 9:30am 15:00 3           clock time, applied to the date or to today
//
// A bare number is read as an hour. "Buy 2 apples" therefore gets a due time of
// 02:00 today; callers that present the result should show the parsed due date.
package quickadd

import (
	"strings"
	"time"

	"quick-task-management/pkg/datemath"
)

// Parser parses quick-add lines against an injected clock and timezone resolver.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	clock     datemath.Clock
	locations *datemath.Locations
}

// New creates a Parser. Nil arguments select the system clock and a resolver
// that falls back to the runtime local zone.
func New(clock datemath.Clock, locations *datemath.Locations) *Parser {
	if clock == nil {
		clock = datemath.SystemClock{}
	}
	if locations == nil {
		locations = datemath.NewLocations(time.Local, datemath.DefaultLocationCacheSize)
	}
	return &Parser{clock: clock, locations: locations}
}

// Parse extracts priority, tags and due date from input. It never fails: anything
// it does not recognise stays in the title. An empty or unknown timezone resolves
// to the parser's fallback location.
func (p *Parser) Parse(input string, timezone string) ParsedTask {
	now := p.now(timezone)

	text := strings.TrimSpace(input)
	text, priority := extractPriority(text)
	text, tags := extractTags(text)
	text, due := extractDate(text, now)
	text, due = extractClock(text, now, due)

	return ParsedTask{
		Title:    normalizeSpaces(text),
		DueAt:    due,
		Priority: priority,
		Tags:     tags,
	}
}

// ChipDates returns today 12:00, today 20:00, tomorrow 12:00 and today+7 days 12:00.
func (p *Parser) ChipDates(timezone string) ChipDates {
	c := datemath.Chips(p.now(timezone))
	return ChipDates{
		Today:    c.Today,
		Tonight:  c.Tonight,
		Tomorrow: c.Tomorrow,
		NextWeek: c.NextWeek,
	}
}

// Now returns the parser's clock reading in the resolved timezone.
func (p *Parser) Now(timezone string) time.Time {
	return p.now(timezone)
}

func (p *Parser) now(timezone string) time.Time {
	loc, _ := p.locations.Resolve(timezone)
	return p.clock.Now().In(loc)
}

var defaultParser = New(nil, nil)

// Parse parses input with the system clock.
func Parse(input string, timezone string) ParsedTask {
	return defaultParser.Parse(input, timezone)
}

// GetChipDates computes chip dates with the system clock.
func GetChipDates(timezone string) ChipDates {
	return defaultParser.ChipDates(timezone)
}
