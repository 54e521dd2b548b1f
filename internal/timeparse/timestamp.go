package timeparse

import (
	"strconv"
	"time"
)

const (
	lenEpochSeconds = 10
	lenEpochMillis  = 13
)

type timestampStrategy struct {
	p *Parser
}

func (s *timestampStrategy) Method() Method { return MethodTimestamp }

// Parse accepts exactly 10 (seconds) or 13 (milliseconds) ASCII digits and
// nothing else.
func (s *timestampStrategy) Parse(text string, param Param) Result {
	fail := Result{Method: MethodTimestamp}
	if !isDigits(text) || (len(text) != lenEpochSeconds && len(text) != lenEpochMillis) {
		return fail
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fail
	}
	if len(text) == lenEpochSeconds {
		n *= 1000
	}

	return s.p.resultAt(MethodTimestamp, time.UnixMilli(n), s.p.explicitZone(param.Timezone))
}
