package timeparse

import (
	"strconv"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name         string
		input        string
		param        Param
		wantTime     time.Time
		wantMillis   int64
		wantTimezone string
	}{
		{
			name:       "seconds",
			input:      "1677380340",
			wantTime:   utc(2023, 2, 26, 2, 59, 0),
			wantMillis: 1677380340000,
		},
		{
			name:       "milliseconds",
			input:      "1677380340123",
			wantTime:   time.Date(2023, 2, 26, 2, 59, 0, 123e6, time.UTC),
			wantMillis: 1677380340123,
		},
		{
			name:         "utc",
			input:        "1677380340",
			param:        Param{Timezone: "UTC"},
			wantTime:     utc(2023, 2, 26, 2, 59, 0),
			wantMillis:   1677380340000,
			wantTimezone: "utc",
		},
		{
			name:         "named zone shifts the wall clock only",
			input:        "1677380340",
			param:        Param{Timezone: "cst"},
			wantTime:     utc(2023, 2, 26, 10, 59, 0),
			wantMillis:   1677380340000,
			wantTimezone: "cst",
		},
		{
			name:       "unknown zone falls back to local",
			input:      "1677380340",
			param:      Param{Timezone: "mars"},
			wantTime:   utc(2023, 2, 26, 2, 59, 0),
			wantMillis: 1677380340000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := p.ParseTimestamp(tt.input, tt.param)
			require.True(t, r.Status)
			assert.Equal(t, MethodTimestamp, r.Method)
			assert.Equal(t, tt.wantTime, r.Time)
			assert.Equal(t, tt.wantMillis, r.Datetime.Reference.EpochMillis)
			assert.Equal(t, tt.wantMillis, r.Datetime.Local.EpochMillis)
			assert.Equal(t, tt.wantTimezone, r.Timezone)
		})
	}
}

func TestParseTimestampRejects(t *testing.T) {
	p := newTestParser()

	inputs := []string{
		"",
		"16773803abc",
		"167738034",
		"16773803401",
		"167738034012",
		"16773803401234",
		" 1677380340",
		"1677380340 ",
		"-677380340",
		"１６７７３８０３４０",
		"1677.380340",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			r := p.ParseTimestamp(input, Param{})
			assert.False(t, r.Status)
			assert.Equal(t, MethodTimestamp, r.Method)
			assert.True(t, r.Time.IsZero())
		})
	}
}

func TestParseTimestampEpochProperty(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	locations := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-7", -7*3600),
		newYork,
	}
	for _, loc := range locations {
		t.Run(loc.String(), func(t *testing.T) {
			p := newTestParser(WithLocation(loc))
			for n := int64(1_000_000_000); n <= 9_999_999_999; n += 123_456_789 {
				s := strconv.FormatInt(n, 10)
				r := p.ParseTimestamp(s, Param{})
				require.True(t, r.Status, s)
				assert.Equal(t, n*1000, r.Datetime.Reference.EpochMillis, s)
				assert.Equal(t, n*1000, r.Datetime.Local.EpochMillis, s)
			}
		})
	}
}

func TestParseTimestampRepeatedHour(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	p := newTestParser(WithLocation(newYork))

	// 01:30 occurs twice on 2023-11-05; both instants must survive.
	tests := []struct {
		input      string
		wantOffset int
	}{
		{"1699162200", -4 * 3600},
		{"1699165800", -5 * 3600},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := p.ParseTimestamp(tt.input, Param{})
			require.True(t, r.Status)
			n, _ := strconv.ParseInt(tt.input, 10, 64)
			assert.Equal(t, n*1000, r.Datetime.Reference.EpochMillis)
			assert.Equal(t, n*1000, r.Datetime.Local.EpochMillis)
			assert.Equal(t, utc(2023, 11, 5, 1, 30, 0), r.Time)

			_, offset := r.Datetime.Local.Datetime.Zone()
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
