package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	want := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"space separated", "2019-05-21 21:30:00"},
		{"datetime-local", "2019-05-21T21:30"},
		{"iso without zone", "2019-05-21T21:30:00"},
		{"rfc3339", "2019-05-21T21:30:00Z"},
		{"payload layout", "2019-05-21T21:30:00.000000Z"},
		{"with offset", "2019-05-21T23:30:00+02:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	_, err := ParseDateTime("next friday")
	assert.Error(t, err)
}

func TestFormatDateTime(t *testing.T) {
	full, err := FormatDateTime("2019-05-21T21:30:00.000Z", DateFormatFull)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", full)

	medium, err := FormatDateTime("2019-05-21T21:30:00.000Z", DateFormatMedium)
	require.NoError(t, err)
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", medium)
}

func TestFormatDateTime_InvalidValue(t *testing.T) {
	_, err := FormatDateTime("not a date", DateFormatFull)
	assert.Error(t, err)
}

func TestFormatTimestamp(t *testing.T) {
	at := time.Date(2035, 4, 1, 20, 0, 0, 0, time.FixedZone("PDT", -7*3600))
	assert.Equal(t, "2035-04-02T03:00:00.000000Z", FormatTimestamp(at))
}
