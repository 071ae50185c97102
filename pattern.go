package datefmt

// fieldKind enumerates every kind of thing a pattern can match. The set is
// closed: tryMatch dispatches over it exhaustively.
type fieldKind int

const (
	kindLiteral fieldKind = iota
	kindEra
	kindYear2
	kindYear4
	kindMonth
	kindMonthName
	kindMonthAbbr
	kindWeekdayName
	kindWeekdayAbbr
	kindDay
	kindHourOfDay  // H, 0-23
	kindHourOfAmPm // K, 0-11
	kindClockHour24
	kindClockHour12
	kindAmPm
	kindMinute
	kindSecond
	kindMilli
	kindZoneName   // z
	kindZoneRFC822 // Z
)

// element is one compiled unit of a pattern: a run of identical field
// letters, or a stretch of literal text. Elements are immutable after
// Compile and shared by every parse call on the handle.
type element struct {
	kind    fieldKind
	width   int
	literal string
}

// compilePattern turns a format string into its element sequence. Runs of
// the same reserved letter collapse into a single field element whose width
// is the run length. Single quotes delimit literal text, with '' escaping a
// quote character. Unreserved ASCII letters are rejected here so that a bad
// pattern never reaches parse time.
func compilePattern(pattern string) ([]element, error) {
	var elems []element
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			elems = append(elems, element{kind: kindLiteral, literal: string(lit)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit = append(lit, '\'')
				i += 2
				continue
			}
			open := i
			i++
			closed := false
			for i < len(pattern) {
				if pattern[i] == '\'' {
					if i+1 < len(pattern) && pattern[i+1] == '\'' {
						lit = append(lit, '\'')
						i += 2
						continue
					}
					closed = true
					i++
					break
				}
				lit = append(lit, pattern[i])
				i++
			}
			if !closed {
				return nil, &InvalidPatternError{Pattern: pattern, Index: open, Reason: "unterminated quote"}
			}
		case isPatternLetter(c):
			start := i
			for i < len(pattern) && pattern[i] == c {
				i++
			}
			kind, ok := kindFor(c, i-start)
			if !ok {
				return nil, &InvalidPatternError{Pattern: pattern, Index: start, Reason: "unsupported pattern letter " + string(c)}
			}
			flush()
			elems = append(elems, element{kind: kind, width: i - start})
		default:
			lit = append(lit, c)
			i++
		}
	}
	flush()
	return elems, nil
}

func isPatternLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// kindFor maps a reserved letter and its run width onto a field kind.
// Width selects between numeric and name forms where the reference grammar
// does (y, M, E); every other letter means the same thing at any width.
func kindFor(c byte, width int) (fieldKind, bool) {
	switch c {
	case 'G':
		return kindEra, true
	case 'y':
		if width == 2 {
			return kindYear2, true
		}
		return kindYear4, true
	case 'M':
		switch {
		case width >= 4:
			return kindMonthName, true
		case width == 3:
			return kindMonthAbbr, true
		default:
			return kindMonth, true
		}
	case 'E':
		if width >= 4 {
			return kindWeekdayName, true
		}
		return kindWeekdayAbbr, true
	case 'd':
		return kindDay, true
	case 'H':
		return kindHourOfDay, true
	case 'K':
		return kindHourOfAmPm, true
	case 'k':
		return kindClockHour24, true
	case 'h':
		return kindClockHour12, true
	case 'a':
		return kindAmPm, true
	case 'm':
		return kindMinute, true
	case 's':
		return kindSecond, true
	case 'S':
		return kindMilli, true
	case 'z':
		return kindZoneName, true
	case 'Z':
		return kindZoneRFC822, true
	}
	return 0, false
}

// digitBounds gives the digit count a numeric field will consume. A width-2
// run is strict (exactly two digits) so that adjacent runs like yyyyMMdd
// split deterministically; other widths take one digit minimum and consume
// greedily up to the kind's natural maximum.
func digitBounds(kind fieldKind, width int) (min, max int) {
	if width == 2 {
		return 2, 2
	}
	switch kind {
	case kindYear4:
		if width == 4 {
			return 1, 4
		}
		return 1, 9
	case kindMilli:
		return 1, 3
	default:
		return 1, 2
	}
}
