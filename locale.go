package datefmt

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameTable holds the localized names one locale needs for text fields.
// The lowered forms are precomputed with the locale's own casing rules so
// that matching reproduces the reference toLowerCase(locale) behavior.
type nameTable struct {
	tag language.Tag

	months       [12]string
	monthsAbbr   [12]string
	weekdays     [7]string
	weekdaysAbbr [7]string
	amPm         [2]string
	eras         [2]string // index 0 is BC, 1 is AD

	monthsLow       [12]string
	monthsAbbrLow   [12]string
	weekdaysLow     [7]string
	weekdaysAbbrLow [7]string
	amPmLow         [2]string
	erasLow         [2]string
}

func newNameTable(tag language.Tag, months, monthsAbbr [12]string, weekdays, weekdaysAbbr [7]string, amPm, eras [2]string) *nameTable {
	t := &nameTable{
		tag:          tag,
		months:       months,
		monthsAbbr:   monthsAbbr,
		weekdays:     weekdays,
		weekdaysAbbr: weekdaysAbbr,
		amPm:         amPm,
		eras:         eras,
	}
	lower := cases.Lower(tag)
	for i, s := range t.months {
		t.monthsLow[i] = lower.String(s)
	}
	for i, s := range t.monthsAbbr {
		t.monthsAbbrLow[i] = lower.String(s)
	}
	for i, s := range t.weekdays {
		t.weekdaysLow[i] = lower.String(s)
	}
	for i, s := range t.weekdaysAbbr {
		t.weekdaysAbbrLow[i] = lower.String(s)
	}
	for i, s := range t.amPm {
		t.amPmLow[i] = lower.String(s)
	}
	for i, s := range t.eras {
		t.erasLow[i] = lower.String(s)
	}
	return t
}

var englishNames = newNameTable(language.AmericanEnglish,
	[12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	[12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	[7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	[7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	[2]string{"AM", "PM"},
	[2]string{"BC", "AD"},
)

var britishNames = newNameTable(language.BritishEnglish,
	englishNames.months, englishNames.monthsAbbr,
	englishNames.weekdays, englishNames.weekdaysAbbr,
	englishNames.amPm, englishNames.eras,
)

var germanNames = newNameTable(language.German,
	[12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	[12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	[7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	[7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	[2]string{"AM", "PM"},
	[2]string{"v. Chr.", "n. Chr."},
)

var frenchNames = newNameTable(language.French,
	[12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	[12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	[7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	[7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	[2]string{"AM", "PM"},
	[2]string{"av. J.-C.", "ap. J.-C."},
)

var spanishNames = newNameTable(language.Spanish,
	[12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	[12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	[7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	[7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	[2]string{"AM", "PM"},
	[2]string{"a. C.", "d. C."},
)

var (
	localeTables = []*nameTable{englishNames, britishNames, germanNames, frenchNames, spanishNames}

	localeMatcher = language.NewMatcher([]language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
	})
)

// tableFor picks the best supported name table for a tag, falling back to
// American English for anything unknown.
func tableFor(tag language.Tag) *nameTable {
	_, i, _ := localeMatcher.Match(tag)
	return localeTables[i]
}
