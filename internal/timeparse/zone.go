package timeparse

import (
	"strconv"
	"strings"
	"time"
)

const (
	zoneLocal = ""
	zoneUTC   = "utc"
)

// zone is the effective timezone of a parse: its label and its offset in
// seconds east of UTC. An empty name means the local zone.
type zone struct {
	name   string
	offset int
}

func (z zone) isSet() bool {
	return z.name != zoneLocal
}

// explicitZone resolves Param.Timezone. Unknown names fall back to local.
func (p *Parser) explicitZone(tz string) zone {
	name := strings.ToLower(strings.TrimSpace(tz))
	switch name {
	case zoneLocal:
		return zone{}
	case zoneUTC:
		return zone{name: zoneUTC}
	}
	offset, ok := p.vocab.TimezoneOffset(name)
	if !ok {
		p.logger.Debug("unknown timezone, using local", "timezone", tz)
		return zone{}
	}
	return zone{name: name, offset: offset}
}

// textZone scans raw text for a written offset ("+02:00", "GMT+8", "Z") or
// a bare UTC/GMT marker.
func (p *Parser) textZone(text string) (zone, bool) {
	for _, re := range p.vocab.OffsetPatterns() {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[len(m)-1]
		offset, ok := parseOffset(raw)
		if !ok {
			continue
		}
		if offset == 0 {
			return zone{name: zoneUTC}, true
		}
		return zone{name: raw, offset: offset}, true
	}
	if p.vocab.ZeroZone(text) {
		return zone{name: zoneUTC}, true
	}
	return zone{}, false
}

// parseOffset reads "+8", "+0530", "-07:00" or "Z" as seconds east of UTC.
func parseOffset(raw string) (int, bool) {
	if strings.EqualFold(raw, "z") {
		return 0, true
	}
	if len(raw) < 2 {
		return 0, false
	}

	sign := 1
	switch raw[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}

	digits := strings.ReplaceAll(raw[1:], ":", "")
	var hh, mm string
	switch len(digits) {
	case 1, 2:
		hh = digits
	case 3:
		hh, mm = digits[:1], digits[1:]
	case 4:
		hh, mm = digits[:2], digits[2:]
	default:
		return 0, false
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours > 14 {
		return 0, false
	}
	minutes := 0
	if mm != "" {
		minutes, err = strconv.Atoi(mm)
		if err != nil || minutes >= 60 {
			return 0, false
		}
	}
	return sign * (hours*3600 + minutes*60), true
}

// naive strips the location from t, keeping its wall-clock fields.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// reconcile turns a wall-clock value into its local and UTC views.
//
// With no zone the wall clock is local time. With "utc" it is UTC. With any
// other zone it is local to that zone's offset.
func (p *Parser) reconcile(wall time.Time, z zone) Dual {
	var local, ref time.Time
	switch z.name {
	case zoneLocal:
		local = time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), p.loc)
		ref = local.UTC()
	case zoneUTC:
		ref = naive(wall)
		local = ref.In(p.loc)
	default:
		ref = naive(wall).Add(-time.Duration(z.offset) * time.Second)
		local = ref.In(p.loc)
	}
	return Dual{
		Local:     Instant{Datetime: local, EpochMillis: local.UnixMilli()},
		Reference: Instant{Datetime: ref, EpochMillis: ref.UnixMilli()},
	}
}

// resultAt assembles a successful Result for a known instant. The wall clock
// is the instant as seen from z, and both views keep the instant's epoch.
func (p *Parser) resultAt(m Method, instant time.Time, z zone) Result {
	var wall time.Time
	switch z.name {
	case zoneLocal:
		wall = instant.In(p.loc)
	case zoneUTC:
		wall = instant.UTC()
	default:
		wall = instant.In(time.FixedZone(z.name, z.offset))
	}
	local, ref := instant.In(p.loc), instant.UTC()
	return Result{
		Status: true,
		Method: m,
		Time:   naive(wall),
		Datetime: Dual{
			Local:     Instant{Datetime: local, EpochMillis: local.UnixMilli()},
			Reference: Instant{Datetime: ref, EpochMillis: ref.UnixMilli()},
		},
		Timezone: z.name,
	}
}

// result assembles a successful Result from a wall clock.
func (p *Parser) result(m Method, wall time.Time, z zone) Result {
	wall = naive(wall)
	return Result{
		Status:   true,
		Method:   m,
		Time:     wall,
		Datetime: p.reconcile(wall, z),
		Timezone: z.name,
	}
}
