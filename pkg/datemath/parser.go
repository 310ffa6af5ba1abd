package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownPhrase is returned for phrases Parse does not recognize.
var ErrUnknownPhrase = errors.New("unknown relative date")

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts relative day phrases to absolute start-of-day times.
type Parser struct {
	location *time.Location
}

// NewParserIn creates a parser bound to an already resolved location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{location: loc}
}

// Parse converts a relative date string to the start of the day it names.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	base := baseTime.In(p.location)

	switch relative {
	case "today":
		return StartOfDay(base), nil
	case "tomorrow":
		return StartOfDay(AddDays(base, 1)), nil
	case "yesterday":
		return StartOfDay(AddDays(base, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, base)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, base)
	}

	return base, fmt.Errorf("%w: %q", ErrUnknownPhrase, relative)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, base time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return base, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return base, fmt.Errorf("invalid duration amount %q: %w", matches[1], err)
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return StartOfDay(AddDays(base, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return StartOfDay(AddDays(base, amount*7)), nil
	default:
		return StartOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles "next monday", "next fri".
func (p *Parser) parseNextWeekday(relative string, base time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := ParseWeekday(dayName)
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return StartOfDay(NextWeekday(base, target)), nil
}
