package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeries(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name  string
		input string
		param Param
		want  time.Time
	}{
		{"first valid window", "/202211/W02022110720101102590.jpg", Param{}, utc(2022, 11, 7, 0, 0, 0)},
		{"path segments join", "https://example.com/2023/07/15/post", Param{}, utc(2023, 7, 15, 0, 0, 0)},
		{"month name joins the run", "report_2023_july_15.pdf", Param{}, utc(2023, 7, 15, 0, 0, 0)},
		{"bracket noise", "[20230116]cover.png", Param{}, utc(2023, 1, 16, 0, 0, 0)},
		{"strict skips future years", "H_502_5@2010oct03.jpg", Param{Strict: true}, utc(2010, 10, 3, 0, 0, 0)},
		{"lenient takes the first window", "H_502_5@2010oct03.jpg", Param{}, utc(2520, 10, 10, 0, 0, 0)},
		{"full width digits", "img-２０２３０７１５.jpg", Param{}, utc(2023, 7, 15, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := p.ParseSeries(tt.input, tt.param)
			require.True(t, r.Status)
			assert.Equal(t, MethodSeries, r.Method)
			assert.Equal(t, tt.want, r.Time)
		})
	}
}

func TestParseSeriesRejects(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name  string
		input string
		param Param
	}{
		{"short run", "/2023/07/", Param{}},
		{"letters split the run", "2023ab0715", Param{}},
		{"no digits", "no digits here", Param{}},
		{"invalid calendar date", "img-20230230.jpg", Param{}},
		{"before 1970", "img-19691231.jpg", Param{}},
		{"strict future year", "img-20270101.jpg", Param{Strict: true}},
		{"empty", "", Param{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := p.ParseSeries(tt.input, tt.param)
			assert.False(t, r.Status)
			assert.Equal(t, MethodSeries, r.Method)
		})
	}
}

func TestParseSeriesRoundTrip(t *testing.T) {
	p := newTestParser()

	start := utc(1970, 1, 1, 0, 0, 0)
	for i := 0; i < 200; i++ {
		want := start.AddDate(0, 0, i*97)
		input := "img-" + want.Format("20060102") + "_final.png"

		r := p.ParseSeries(input, Param{})
		require.True(t, r.Status, input)
		assert.Equal(t, want, r.Time, input)
	}
}

func TestParseSeriesTimezone(t *testing.T) {
	p := newTestParser()

	r := p.ParseSeries("img-20230715.jpg", Param{Timezone: "cst"})
	require.True(t, r.Status)
	assert.Equal(t, "cst", r.Timezone)
	assert.Equal(t, utc(2023, 7, 15, 0, 0, 0), r.Time)
	assert.True(t, utc(2023, 7, 14, 16, 0, 0).Equal(r.Datetime.Reference.Datetime))
}
