package quickadd

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"quick-task-management/pkg/datemath"
)

var (
	priorityPattern = regexp.MustCompile(`(?i)\s(!high|!med|!medium|!low)\b`)
	tagPattern      = regexp.MustCompile(`#(\w+)`)
	clockPattern    = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s?(am|pm)?\b`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

var priorityMarkers = map[string]Priority{
	"!high":   PriorityHigh,
	"!med":    PriorityMedium,
	"!medium": PriorityMedium,
	"!low":    PriorityLow,
}

// dateRule recognises one relative date phrase. resolve returns false when the
// matched phrase cannot be turned into a date, in which case it stays in the title.
type dateRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(match []string, now time.Time) (time.Time, bool)
}

// dateRules are tried in order; the first rule whose pattern matches is the only one applied.
var dateRules = []dateRule{
	{
		name:    "today",
		pattern: regexp.MustCompile(`(?i)\btoday\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return datemath.At(now, datemath.NoonHour, 0), true
		},
	},
	{
		name:    "tonight",
		pattern: regexp.MustCompile(`(?i)\btonight\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return datemath.At(now, datemath.EveningHour, 0), true
		},
	},
	{
		name:    "tomorrow",
		pattern: regexp.MustCompile(`(?i)\btomorrow\b`),
		resolve: func(_ []string, now time.Time) (time.Time, bool) {
			return datemath.At(datemath.AddDays(now, 1), datemath.NoonHour, 0), true
		},
	},
	{
		name:    "next-weekday",
		pattern: regexp.MustCompile(`(?i)\bnext\s+(mon|monday|tue|tuesday|wed|wednesday|thu|thursday|fri|friday|sat|saturday|sun|sunday)\b`),
		resolve: func(match []string, now time.Time) (time.Time, bool) {
			wd, ok := datemath.ParseWeekday(match[1])
			if !ok {
				return time.Time{}, false
			}
			return datemath.At(datemath.NextWeekday(now, wd), datemath.NoonHour, 0), true
		},
	},
	{
		name:    "in-duration",
		pattern: regexp.MustCompile(`(?i)\bin\s+(\d+)\s*(minutes|minute|mins|min|hours|hour|h|days|day|d)\b`),
		resolve: func(match []string, now time.Time) (time.Time, bool) {
			amount, err := strconv.Atoi(match[1])
			if err != nil {
				return time.Time{}, false
			}
			switch unit := strings.ToLower(match[2]); {
			case strings.HasPrefix(unit, "min"):
				return addDuration(now, amount, time.Minute)
			case strings.HasPrefix(unit, "h"):
				return addDuration(now, amount, time.Hour)
			default:
				if amount > maxInDays {
					return time.Time{}, false
				}
				return datemath.AddDays(now, amount), true
			}
		},
	},
}

// maxInDays bounds "in N days" to keep the calendar year within int range.
const maxInDays = math.MaxInt32

// addDuration returns now + amount*unit, or false when the product does not fit a time.Duration.
func addDuration(now time.Time, amount int, unit time.Duration) (time.Time, bool) {
	if int64(amount) > math.MaxInt64/int64(unit) {
		return time.Time{}, false
	}
	return now.Add(time.Duration(amount) * unit), true
}

// cut removes text[loc[0]:loc[1]].
func cut(text string, loc []int) string {
	return text[:loc[0]] + text[loc[1]:]
}

func extractPriority(text string) (string, Priority) {
	loc := priorityPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, PriorityNone
	}
	marker := strings.ToLower(text[loc[2]:loc[3]])
	return cut(text, loc), priorityMarkers[marker]
}

func extractTags(text string) (string, []string) {
	tags := []string{}
	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		tags = append(tags, m[1])
	}
	if len(tags) == 0 {
		return text, tags
	}
	return tagPattern.ReplaceAllString(text, ""), tags
}

func extractDate(text string, now time.Time) (string, *time.Time) {
	for _, rule := range dateRules {
		loc := rule.pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		due, ok := rule.resolve(submatches(text, loc), now)
		if !ok {
			return text, nil
		}
		return strings.TrimSpace(cut(text, loc)), &due
	}
	return text, nil
}

// extractClock applies the first time-of-day token to due, or to today when due is nil.
func extractClock(text string, now time.Time, due *time.Time) (string, *time.Time) {
	loc := clockPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, due
	}
	m := submatches(text, loc)

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return text, due
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	day := now
	if due != nil {
		day = *due
	}
	at := datemath.At(day, hour, minute)
	return strings.TrimSpace(cut(text, loc)), &at
}

func normalizeSpaces(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// submatches expands FindStringSubmatchIndex output; unmatched groups become "".
func submatches(text string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}
