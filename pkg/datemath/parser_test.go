package datemath_test

import (
	"errors"
	"testing"
	"time"

	"quick-task-management/pkg/datemath"
)

func TestParse(t *testing.T) {
	parser := datemath.NewParserIn(time.UTC)
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next fri abbreviation", relative: "next fri", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown phrase", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseUnknownPhrase(t *testing.T) {
	_, err := datemath.NewParserIn(time.UTC).Parse("weekly", time.Now())
	if !errors.Is(err, datemath.ErrUnknownPhrase) {
		t.Fatalf("expected ErrUnknownPhrase, got %v", err)
	}
}

func TestParseUsesParserLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	parser := datemath.NewParserIn(tokyo)

	// 20:00 UTC on May 1 is already May 2 in Tokyo.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	got, err := parser.Parse("today", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 2, 0, 0, 0, 0, tokyo)
	if !got.Equal(want) {
		t.Errorf("Parse() got = %v, want %v", got, want)
	}
}
