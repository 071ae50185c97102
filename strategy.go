package datefmt

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// fieldValues collects what a parse run resolved. Later matches of the same
// kind overwrite earlier ones, last occurrence wins.
type fieldValues struct {
	vals [kindZoneRFC822 + 1]int
	set  [kindZoneRFC822 + 1]bool
	loc  *time.Location
}

func (v *fieldValues) put(k fieldKind, n int) {
	v.vals[k] = n
	v.set[k] = true
}

func (v *fieldValues) get(k fieldKind) (int, bool) {
	return v.vals[k], v.set[k]
}

// tryMatch attempts to match one element at input[pos:], writing any
// resolved value into vals. It returns the byte count consumed. A false
// return is the strategy-level no-match; the engine turns it into the
// terminal error position.
func (p *Parser) tryMatch(el element, input string, pos int, vals *fieldValues) (int, bool) {
	switch el.kind {
	case kindLiteral:
		return foldPrefix(input[pos:], el.literal)

	case kindEra:
		i, n, ok := matchName(input[pos:], p.names.erasLow[:])
		if ok {
			vals.put(kindEra, i)
		}
		return n, ok
	case kindMonthName:
		i, n, ok := matchName(input[pos:], p.names.monthsLow[:])
		if ok {
			vals.put(kindMonth, i+1)
		}
		return n, ok
	case kindMonthAbbr:
		i, n, ok := matchName(input[pos:], p.names.monthsAbbrLow[:])
		if ok {
			vals.put(kindMonth, i+1)
		}
		return n, ok
	case kindWeekdayName:
		i, n, ok := matchName(input[pos:], p.names.weekdaysLow[:])
		if ok {
			vals.put(kindWeekdayName, i)
		}
		return n, ok
	case kindWeekdayAbbr:
		i, n, ok := matchName(input[pos:], p.names.weekdaysAbbrLow[:])
		if ok {
			vals.put(kindWeekdayName, i)
		}
		return n, ok
	case kindAmPm:
		i, n, ok := matchName(input[pos:], p.names.amPmLow[:])
		if ok {
			vals.put(kindAmPm, i)
		}
		return n, ok

	case kindYear2:
		v, n, ok := matchDigits(input, pos, 2, 2)
		if ok {
			vals.put(kindYear2, p.expandYear(v))
		}
		return n, ok

	case kindZoneName:
		return p.matchZone(input, pos, vals)
	case kindZoneRFC822:
		secs, n, ok := parseRFC822Offset(input[pos:])
		if ok {
			vals.loc = time.FixedZone(input[pos:pos+n], secs)
		}
		return n, ok

	default:
		min, max := digitBounds(el.kind, el.width)
		v, n, ok := matchDigits(input, pos, min, max)
		if ok {
			vals.put(el.kind, v)
		}
		return n, ok
	}
}

// matchZone implements the z field: a GMT-prefixed offset, a bare RFC-822
// offset, or a known zone name, in that order. The offset sub-grammar
// depends on whether the GMT prefix is present, so the branch happens
// before any digits are read.
func (p *Parser) matchZone(input string, pos int, vals *fieldValues) (int, bool) {
	rest := input[pos:]
	if n, ok := foldPrefix(rest, "gmt"); ok {
		after := rest[n:]
		if len(after) > 0 && (after[0] == '+' || after[0] == '-') {
			secs, m, ok := parseGMTOffset(after[1:])
			if !ok {
				return 0, false
			}
			if after[0] == '-' {
				secs = -secs
			}
			total := n + 1 + m
			if secs == 0 {
				vals.loc = time.UTC
			} else {
				vals.loc = time.FixedZone(input[pos:pos+total], secs)
			}
			return total, true
		}
		vals.loc = time.UTC
		return n, true
	}
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		secs, n, ok := parseRFC822Offset(rest)
		if !ok {
			return 0, false
		}
		vals.loc = time.FixedZone(rest[:n], secs)
		return n, true
	}
	n, loc, ok := p.zones.Resolve(rest)
	if !ok {
		return 0, false
	}
	vals.loc = loc
	return n, true
}

// matchDigits consumes between min and max ASCII digits starting at pos,
// returning their value. Consumption is greedy up to max.
func matchDigits(input string, pos, min, max int) (val, n int, ok bool) {
	for pos+n < len(input) && n < max && isDigit(input[pos+n]) {
		val = val*10 + int(input[pos+n]-'0')
		n++
	}
	if n < min {
		return 0, 0, false
	}
	return val, n, true
}

// matchName finds the longest candidate that is a case-folded prefix of s.
// Candidates are already lowered with the locale's casing rules; equal
// lengths break toward the lower table index.
func matchName(s string, names []string) (idx, n int, ok bool) {
	best := -1
	bestN := 0
	for i, name := range names {
		if m, ok := foldPrefix(s, name); ok && m > bestN {
			best, bestN = i, m
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestN, true
}

// foldPrefix reports whether s starts with prefix under case folding and
// how many bytes of s that covers. On a mismatch it returns the bytes
// matched before the offending character, so a literal failure can be
// positioned at the character itself rather than the literal's start.
func foldPrefix(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return n, false
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		if !foldEq(r, pr) {
			return n, false
		}
		n += size
	}
	return n, true
}

func foldEq(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
