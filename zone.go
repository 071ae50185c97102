package datefmt

import "time"

// ZoneResolver matches a timezone name at the start of a string, returning
// the matched byte count and the resolved location. Implementations must be
// safe for concurrent use; the built-in resolver is a read-only table.
type ZoneResolver interface {
	Resolve(s string) (n int, loc *time.Location, ok bool)
}

type zoneEntry struct {
	name   string // lowered
	offset int    // seconds east of UTC
}

type zoneTable struct {
	entries []zoneEntry
	cached  []*time.Location
}

func newZoneTable(entries []zoneEntry) *zoneTable {
	t := &zoneTable{entries: entries, cached: make([]*time.Location, len(entries))}
	for i, e := range entries {
		if e.offset == 0 {
			t.cached[i] = time.UTC
			continue
		}
		t.cached[i] = time.FixedZone(e.name, e.offset)
	}
	return t
}

// Resolve finds the longest table entry that is a case-folded prefix of s.
// Ties cannot occur: equal-length matches would be the same name.
func (t *zoneTable) Resolve(s string) (int, *time.Location, bool) {
	best := -1
	bestN := 0
	for i, e := range t.entries {
		if n, ok := foldPrefix(s, e.name); ok && n > bestN {
			best, bestN = i, n
		}
	}
	if best < 0 {
		return 0, nil, false
	}
	return bestN, t.cached[best], true
}

// defaultZones covers the abbreviations the reference locale data exposes
// for the common North American, European and Pacific zones. GMT is absent
// on purpose: the GMT offset grammar is handled before name resolution.
var defaultZones = newZoneTable([]zoneEntry{
	{"utc", 0},
	{"ut", 0},
	{"est", -5 * 3600},
	{"edt", -4 * 3600},
	{"cst", -6 * 3600},
	{"cdt", -5 * 3600},
	{"mst", -7 * 3600},
	{"mdt", -6 * 3600},
	{"pst", -8 * 3600},
	{"pdt", -7 * 3600},
	{"akst", -9 * 3600},
	{"akdt", -8 * 3600},
	{"hst", -10 * 3600},
	{"wet", 0},
	{"west", 1 * 3600},
	{"cet", 1 * 3600},
	{"cest", 2 * 3600},
	{"eet", 2 * 3600},
	{"eest", 3 * 3600},
	{"bst", 1 * 3600},
	{"msk", 3 * 3600},
	{"ist", 5*3600 + 1800},
	{"jst", 9 * 3600},
	{"kst", 9 * 3600},
	{"acst", 9*3600 + 1800},
	{"aest", 10 * 3600},
	{"aedt", 11 * 3600},
	{"nzst", 12 * 3600},
	{"nzdt", 13 * 3600},
})

// parseGMTOffset parses the part after "GMT" and a sign: an hour of one or
// two digits, optionally followed by a colon and exactly two minute digits.
// Three or more digits without a colon are rejected; the grouping would be
// ambiguous.
func parseGMTOffset(s string) (secs, n int, ok bool) {
	digits := leadingDigits(s)
	switch {
	case digits == 0 || digits > 2:
		return 0, 0, false
	case digits < len(s) && s[digits] == ':':
		if len(s) < digits+3 || !isDigit(s[digits+1]) || !isDigit(s[digits+2]) {
			return 0, 0, false
		}
		h := atoi(s[:digits])
		m := atoi(s[digits+1 : digits+3])
		return h*3600 + m*60, digits + 3, true
	default:
		return atoi(s[:digits]) * 3600, digits, true
	}
}

// parseRFC822Offset parses a bare signed offset: a sign and exactly four
// digits, no colon. This is the only shape the bare grammar admits.
func parseRFC822Offset(s string) (secs, n int, ok bool) {
	if len(s) < 5 || (s[0] != '+' && s[0] != '-') {
		return 0, 0, false
	}
	if leadingDigits(s[1:]) < 4 {
		return 0, 0, false
	}
	h := atoi(s[1:3])
	m := atoi(s[3:5])
	secs = h*3600 + m*60
	if s[0] == '-' {
		secs = -secs
	}
	return secs, 5, true
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// atoi converts a short digit-only string; callers have already validated
// every byte.
func atoi(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v
}
