package timeparse

import (
	"strings"
	"time"

	"github.com/jparise/datesift/internal/corpus"
)

const (
	seriesWindow = 8 // YYYYMMDD
	seriesLayout = "20060102"
	minYear      = 1970
	maxYear      = 9999
)

type seriesStrategy struct {
	p *Parser
}

func (s *seriesStrategy) Method() Method { return MethodSeries }

// Parse finds a YYYYMMDD date inside the digit runs of a URL or file name.
// The time of day is midnight.
func (s *seriesStrategy) Parse(text string, param Param) Result {
	fail := Result{Method: MethodSeries}
	v := s.p.vocab

	text = v.Apply(corpus.NoBreakSpace, fold(text))
	text = v.Apply(corpus.SymbolSafe, text)
	text = strings.TrimSpace(v.Apply(corpus.NoBreakSpace, text))
	text, _ = s.p.unitize(text)

	maxY := maxYear
	if param.Strict {
		maxY = s.p.today().Year()
	}

	for _, run := range s.runs(s.p.chunks(text)) {
		for i := 0; i+seriesWindow <= len(run); i++ {
			t, err := time.Parse(seriesLayout, run[i:i+seriesWindow])
			if err != nil || t.Year() < minYear || t.Year() > maxY {
				continue
			}
			s.p.logger.Debug("series window", "run", run, "offset", i)
			return s.p.result(MethodSeries, t, s.p.explicitZone(param.Timezone))
		}
	}
	return fail
}

// runs concatenates digit chunks, and month names as two digits, into
// candidate runs. A chunk with letters that is not a month ends the current
// run. Pure symbol chunks are skipped without ending it.
func (s *seriesStrategy) runs(chunks []string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() >= seriesWindow {
			out = append(out, cur.String())
		}
		cur.Reset()
	}
	for _, c := range chunks {
		if isDigits(c) {
			cur.WriteString(c)
			continue
		}
		word := s.p.vocab.Letters(c)
		if word == "" {
			continue
		}
		if digits, ok := s.p.vocab.MonthDigits(word); ok {
			cur.WriteString(digits)
			continue
		}
		flush()
	}
	flush()
	return out
}
