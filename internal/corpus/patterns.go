package corpus

import (
	"regexp"
	"strconv"
	"strings"
)

// Noise classes accepted by Apply.
const (
	NoBreakSpace = "no_break_space"
	SymbolPoint  = "symbol_point"
	SymbolNormal = "symbol_normal"
	SymbolSafe   = "symbol_safe"
	Space        = "space"
)

type replacement struct {
	re   *regexp.Regexp
	with string
}

var noisePatterns = map[string]replacement{
	NoBreakSpace: {regexp.MustCompile(`[\x{00A0}\x{2007}\x{202F}\x{3000}\x{FEFF}\x{200B}]`), " "},
	SymbolPoint:  {regexp.MustCompile(`\.`), " "},
	// Keeps letters (with combining marks, for Thai), digits, whitespace, the
	// clock separator and the period used by abbreviations such as "ก.ค.".
	SymbolNormal: {regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s:.]+`), " "},
	// Only bracket and quote noise; path separators survive so that digit
	// runs in URLs and file names stay intact.
	SymbolSafe: {regexp.MustCompile(`["'()\[\]{}<>«»「」『』【】《》]+`), " "},
	Space:      {regexp.MustCompile(`\s+`), " "},
}

var (
	splitNumericPattern = regexp.MustCompile(`\d+|:|[^\d:]+`)
	symbolPattern       = regexp.MustCompile(`[^\p{L}\p{M}\p{N}]`)
	letterPattern       = regexp.MustCompile(`[^\p{L}\p{M}]+`)
)

// Offset patterns, tried in this order. The last capture group holds the
// offset text.
var offsetPatterns = []*regexp.Regexp{
	// TZZeroOffset: "UTC+8", "GMT-05:00"
	regexp.MustCompile(`(?i)\b(?:utc|gmt)\s?([+-]\d{1,2}(?::?\d{2})?)\b`),
	// TZOffset: "14:12:51+02:00", "10:00 -0700"
	regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?(?:\.\d+)?\s?([+-]\d{2}:?\d{2})\b`),
	// TZZero: "14:12:51Z"
	regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?(?:\.\d+)?\s?([zZ])\b`),
}

// zeroZonePattern is the TZ class: a bare reference-zone marker.
var zeroZonePattern = regexp.MustCompile(`(?i)\b(?:utc|gmt)\b`)

// dubiousPatterns recognize a year-first date that is trusted over any other
// numbers in the text.
var dubiousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2}-\d{1,2}-\d{1,2})(?:\D|$)`),
	regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2}/\d{1,2}/\d{1,2})(?:\D|$)`),
	regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2}\.\d{1,2}\.\d{1,2})(?:\D|$)`),
}

var (
	isoSeparatorPattern = regexp.MustCompile(`(\d)[Tt](\d)`)
	cjkClockPattern     = regexp.MustCompile(`(\d{1,2})\s*[时時点點시]([간間])?\s*(?:(\d{1,2})\s*[分분])?\s*(?:(\d{1,2})\s*[秒초])?`)
	hourMarkPattern     = regexp.MustCompile(`(?i)\b(\d{1,2})h(\d{2})\b`)
	yearMarkPattern     = regexp.MustCompile(`(\d{4})\s*[年년]`)
	monthMarkPattern    = regexp.MustCompile(`(\d{1,2})\s*([月월])`)
	dayMarkPattern      = regexp.MustCompile(`(\d{1,2})\s*[日号號일]`)
	reiwaPattern        = regexp.MustCompile(`令和\s*(\d{1,2}|元)\s*年`)
)

// reiwaEpoch is the Gregorian year before Reiwa 1.
const reiwaEpoch = 2018

func expandClock(match string) string {
	parts := cjkClockPattern.FindStringSubmatch(match)
	// 시간 and 時間 mean "hours", not a clock reading.
	if parts[2] != "" {
		return match
	}
	hour, minute, second := parts[1], parts[3], parts[4]
	if minute == "" {
		minute = "00"
	}
	out := hour + ":" + pad(minute)
	if second != "" {
		out += ":" + pad(second)
	}
	return " " + out + " "
}

func pad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func expandReiwa(match string) string {
	parts := reiwaPattern.FindStringSubmatch(match)
	n := 1
	if parts[1] != "元" {
		n, _ = strconv.Atoi(parts[1])
	}
	return strconv.Itoa(reiwaEpoch+n) + "年"
}

func letters(s string) string {
	return strings.TrimSpace(letterPattern.ReplaceAllString(s, " "))
}
