package datefmt

import "time"

// expandYear maps a two-digit year into a full year using the pivot rule:
// values below the pivot belong to the 2000s, the rest to the 1900s.
func (p *Parser) expandYear(v int) int {
	if v < p.pivot {
		return 2000 + v
	}
	return 1900 + v
}

// resolve folds the collected field values into an absolute instant.
//
// The hour conventions collapse in precedence order: a 0-23 hour is taken
// as entered, a 1-24 clock hour is reduced modulo 24, a 1-12 clock hour is
// reduced modulo 12 before the PM offset, and a 0-11 am/pm hour takes the
// PM offset directly. Out-of-range values survive to time.Date, which
// rolls them over the same way the reference calendar does.
func (p *Parser) resolve(v *fieldValues) (time.Time, error) {
	year, okYear := v.get(kindYear4)
	if !okYear {
		year, okYear = v.get(kindYear2)
	}
	if !okYear {
		return time.Time{}, &IncompleteFieldsError{Pattern: p.pattern}
	}
	if era, ok := v.get(kindEra); ok && era == 0 {
		year = 1 - year
	}

	month := 1
	if m, ok := v.get(kindMonth); ok {
		month = m
	}
	day := 1
	if d, ok := v.get(kindDay); ok {
		day = d
	}

	pm := false
	if a, ok := v.get(kindAmPm); ok {
		pm = a == 1
	}
	hour := 0
	switch {
	case v.set[kindHourOfDay]:
		hour = v.vals[kindHourOfDay]
	case v.set[kindClockHour24]:
		hour = v.vals[kindClockHour24] % 24
	case v.set[kindClockHour12]:
		hour = v.vals[kindClockHour12] % 12
		if pm {
			hour += 12
		}
	case v.set[kindHourOfAmPm]:
		hour = v.vals[kindHourOfAmPm]
		if pm {
			hour += 12
		}
	}

	min, _ := v.get(kindMinute)
	sec, _ := v.get(kindSecond)
	ms, _ := v.get(kindMilli)

	loc := p.loc
	if v.loc != nil {
		loc = v.loc
	}
	return time.Date(year, time.Month(month), day, hour, min, sec, ms*int(time.Millisecond), loc), nil
}
