package sift

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jparise/datesift/internal/timeparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *timeparse.Parser {
	return timeparse.New(
		timeparse.WithClock(timeparse.FixedClock(testNow)),
		timeparse.WithLocation(time.UTC),
	)
}

func newTestSifter(format Format) (*Sifter, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	clock := timeparse.FixedClock(testNow)
	output := NewOutput(stdout, stderr, format, false, clock)
	return New(newTestParser(), output, clock, nil), stdout, stderr
}

// slowParser delays early inputs so that workers finish out of order.
type slowParser struct {
	inner  Parser
	active atomic.Int32
	peak   atomic.Int32
}

func (p *slowParser) ParseMethod(m timeparse.Method, text string, param timeparse.Param) timeparse.Result {
	n := p.active.Add(1)
	defer p.active.Add(-1)
	for {
		old := p.peak.Load()
		if n <= old || p.peak.CompareAndSwap(old, n) {
			break
		}
	}
	if strings.HasPrefix(text, "1") {
		time.Sleep(20 * time.Millisecond)
	}
	return p.inner.ParseMethod(m, text, param)
}

func TestTexts(t *testing.T) {
	s, stdout, _ := newTestSifter(FormatPlain)

	inputs := []string{
		"1697014800",
		"3 hours ago",
		"not a date",
		"2023-07-30T14:12:51+02:00",
	}
	err := s.Texts(context.Background(), inputs, &Options{Method: timeparse.MethodAuto, Jobs: 4})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, len(inputs))
	assert.True(t, strings.HasPrefix(lines[0], "1697014800\ttimestamp\t2023-10-11T09:00:00Z"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "3 hours ago\trelative\t2026-10-19T09:00:00Z"), lines[1])
	assert.Equal(t, "not a date\t-", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "2023-07-30T14:12:51+02:00\tabsolute\t2023-07-30T12:12:51Z"), lines[3])
}

func TestTextsKeepsInputOrder(t *testing.T) {
	stdout := &bytes.Buffer{}
	clock := timeparse.FixedClock(testNow)
	parser := &slowParser{inner: newTestParser()}
	s := New(parser, NewOutput(stdout, &bytes.Buffer{}, FormatJSONL, false, clock), clock, nil)

	var inputs []string
	for i := range 20 {
		prefix := "2-"
		if i%2 == 0 {
			prefix = "1-"
		}
		inputs = append(inputs, prefix+time.Date(2020, 1, 1+i, 0, 0, 0, 0, time.UTC).Format("20060102"))
	}

	err := s.Texts(context.Background(), inputs, &Options{Method: timeparse.MethodSeries, Jobs: 3})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, len(inputs))
	for i, line := range lines {
		assert.Contains(t, line, `"input":"`+inputs[i]+`"`)
	}
	assert.LessOrEqual(t, parser.peak.Load(), int32(3))
}

func TestTextsFail(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		fail    bool
		wantErr error
	}{
		{"all parse", []string{"2023-07-30", "1 day ago"}, true, nil},
		{"one miss", []string{"2023-07-30", "nope"}, true, ErrNoMatch},
		{"miss without fail", []string{"nope"}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSifter(FormatPlain)
			err := s.Texts(context.Background(), tt.inputs, &Options{Method: timeparse.MethodAuto, Jobs: 2, Fail: tt.fail})
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTextsParam(t *testing.T) {
	s, stdout, _ := newTestSifter(FormatPlain)

	err := s.Texts(context.Background(), []string{"2023-07-30 10:00"}, &Options{
		Method: timeparse.MethodAbsolute,
		Param:  timeparse.Param{Timezone: "jst"},
		Jobs:   1,
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "2023-07-30T01:00:00Z")
}

func TestTextsContextCanceled(t *testing.T) {
	s, stdout, _ := newTestSifter(FormatPlain)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Texts(ctx, []string{"2023-07-30"}, &Options{Method: timeparse.MethodAuto, Jobs: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stdout.Len())
}

func TestWithin(t *testing.T) {
	s, _, _ := newTestSifter(FormatPlain)

	recent := okRecord("a", timeparse.MethodSeries, testNow.Add(-24*time.Hour))
	old := okRecord("b", timeparse.MethodSeries, testNow.Add(-90*24*time.Hour))
	miss := Record{Input: "c"}

	assert.True(t, s.within(recent, 0))
	assert.True(t, s.within(old, 0))
	assert.True(t, s.within(recent, 7*24*time.Hour))
	assert.False(t, s.within(old, 7*24*time.Hour))
	assert.False(t, s.within(miss, 0))
}
