package utils

import (
	"fmt"
	"time"
)

// TimestampLayout is how show start times are serialized in payloads.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

const (
	DateFormatFull   = "full"
	DateFormatMedium = "medium"
)

var dateFormatLayouts = map[string]string{
	DateFormatFull:   "Monday January, 2, 2006 at 3:04PM",
	DateFormatMedium: "Mon 01, 02, 2006 3:04PM",
}

// accepted start_time inputs, most specific first
var dateTimeInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	TimestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseDateTime parses a submitted start time. Values without a zone are
// read as UTC.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeInputLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", value)
}

// FormatDateTime renders a timestamp string with a named preset ("full" or
// "medium"). Any other preset is used as a Go layout directly.
func FormatDateTime(value, preset string) (string, error) {
	t, err := ParseDateTime(value)
	if err != nil {
		return "", err
	}

	layout, ok := dateFormatLayouts[preset]
	if !ok {
		layout = preset
	}
	return t.Format(layout), nil
}
