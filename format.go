package datefmt

import (
	"strconv"
	"strings"
	"time"
)

// Format prints t with the compiled pattern, the inverse of Parse for the
// fields the pattern encodes. Zone names fall back to the GMT offset form
// when the location has no abbreviation.
func (p *Parser) Format(t time.Time) string {
	var b strings.Builder
	for _, el := range p.elems {
		switch el.kind {
		case kindLiteral:
			b.WriteString(el.literal)
		case kindEra:
			i := 1
			if t.Year() <= 0 {
				i = 0
			}
			b.WriteString(p.names.eras[i])
		case kindYear2:
			y := t.Year() % 100
			if y < 0 {
				y = -y
			}
			writePadded(&b, y, 2)
		case kindYear4:
			y := t.Year()
			if y < 0 {
				y = 1 - y
			}
			writePadded(&b, y, el.width)
		case kindMonth:
			writePadded(&b, int(t.Month()), el.width)
		case kindMonthName:
			b.WriteString(p.names.months[t.Month()-1])
		case kindMonthAbbr:
			b.WriteString(p.names.monthsAbbr[t.Month()-1])
		case kindWeekdayName:
			b.WriteString(p.names.weekdays[t.Weekday()])
		case kindWeekdayAbbr:
			b.WriteString(p.names.weekdaysAbbr[t.Weekday()])
		case kindDay:
			writePadded(&b, t.Day(), el.width)
		case kindHourOfDay:
			writePadded(&b, t.Hour(), el.width)
		case kindHourOfAmPm:
			writePadded(&b, t.Hour()%12, el.width)
		case kindClockHour24:
			h := t.Hour()
			if h == 0 {
				h = 24
			}
			writePadded(&b, h, el.width)
		case kindClockHour12:
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			writePadded(&b, h, el.width)
		case kindAmPm:
			b.WriteString(p.names.amPm[t.Hour()/12])
		case kindMinute:
			writePadded(&b, t.Minute(), el.width)
		case kindSecond:
			writePadded(&b, t.Second(), el.width)
		case kindMilli:
			writePadded(&b, t.Nanosecond()/int(time.Millisecond), el.width)
		case kindZoneName:
			name, offset := t.Zone()
			if name != "" && !strings.HasPrefix(name, "+") && !strings.HasPrefix(name, "-") {
				b.WriteString(name)
			} else {
				writeGMTOffset(&b, offset)
			}
		case kindZoneRFC822:
			_, offset := t.Zone()
			writeRFC822Offset(&b, offset)
		}
	}
	return b.String()
}

func writePadded(b *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for n := len(s); n < width; n++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

func writeGMTOffset(b *strings.Builder, offset int) {
	b.WriteString("GMT")
	if offset < 0 {
		b.WriteByte('-')
		offset = -offset
	} else {
		b.WriteByte('+')
	}
	writePadded(b, offset/3600, 2)
	b.WriteByte(':')
	writePadded(b, offset%3600/60, 2)
}

func writeRFC822Offset(b *strings.Builder, offset int) {
	if offset < 0 {
		b.WriteByte('-')
		offset = -offset
	} else {
		b.WriteByte('+')
	}
	writePadded(b, offset/3600, 2)
	writePadded(b, offset%3600/60, 2)
}
