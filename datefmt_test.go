package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

var (
	utc  = time.UTC
	enUS = language.AmericanEnglish
)

type parseTest struct {
	pattern, in, out string
	errIndex         int // -1 means success expected
}

var parseTests = []parseTest{
	{pattern: "yyyyMMdd", in: "20230405", out: "2023-04-05 00:00:00 +0000 UTC", errIndex: -1},
	{pattern: "yyyy-MM-dd", in: "2023-04-05", out: "2023-04-05 00:00:00 +0000 UTC", errIndex: -1},
	{pattern: "yyyy-MM-dd HH:mm:ss", in: "2006-01-02 15:04:05", out: "2006-01-02 15:04:05 +0000 UTC", errIndex: -1},
	{pattern: "M/d/yyyy", in: "4/8/2014", out: "2014-04-08 00:00:00 +0000 UTC", errIndex: -1},
	{pattern: "M/d/yyyy", in: "10/13/2014", out: "2014-10-13 00:00:00 +0000 UTC", errIndex: -1},
	{pattern: "MMM d, yyyy", in: "Oct 7, 1970", out: "1970-10-07 00:00:00 +0000 UTC", errIndex: -1},
	{pattern: "MMM d, yyyy", in: "oct 7, 1970", out: "1970-10-07 00:00:00 +0000 UTC", errIndex: -1},
	{pattern: "MMMM d, yyyy", in: "September 17, 2012", out: "2012-09-17 00:00:00 +0000 UTC", errIndex: -1},
	{pattern: "MMM d, yyyy h:mm:ss a", in: "May 8, 2009 5:57:51 PM", out: "2009-05-08 17:57:51 +0000 UTC", errIndex: -1},
	{pattern: "EEE MMM d HH:mm:ss yyyy", in: "Thu May 8 17:57:51 2009", out: "2009-05-08 17:57:51 +0000 UTC", errIndex: -1},
	{pattern: "EEE, dd MMM yyyy HH:mm:ss z", in: "Fri, 03 Jul 2015 08:08:08 MST", out: "2015-07-03 15:08:08 +0000 UTC", errIndex: -1},
	{pattern: "EEE, dd MMM yyyy HH:mm:ss Z", in: "Thu, 03 Jul 2017 08:08:04 +0100", out: "2017-07-03 07:08:04 +0000 UTC", errIndex: -1},
	{pattern: "EEE, dd MMM yyyy HH:mm:ss Z", in: "Thu, 03 Jul 2017 08:08:04 -0100", out: "2017-07-03 09:08:04 +0000 UTC", errIndex: -1},
	{pattern: "yyyy-MM-dd'T'HH:mm:ss", in: "2009-08-12T22:15:09", out: "2009-08-12 22:15:09 +0000 UTC", errIndex: -1},

	// failures carry the offset of the first unmatched character
	{pattern: "yyyyMMdd", in: "20230405x", errIndex: 8},
	{pattern: "yyyy-MM-dd", in: "2023-04x05", errIndex: 7},
	{pattern: "yyyy-MM-dd", in: "2023x04-05", errIndex: 4},
	{pattern: "yyyy-MM-dd", in: "x023-04-05", errIndex: 0},
	{pattern: "yyyy-MM-dd", in: "2023-04-", errIndex: 8},
	{pattern: "MMM d, yyyy", in: "Smarch 7, 1970", errIndex: 0},
	// a mismatch inside a multi-character literal points at the offending
	// character, not the literal's start
	{pattern: "MMM d, yyyy", in: "Oct 7,x1970", errIndex: 6},
	{pattern: "yyyy' at 'HH", in: "2023 atx17", errIndex: 7},
	{pattern: "MMM d, yyyy", in: "Oct 7,", errIndex: 6},
	{pattern: "MM/dd/yy", in: "1/11/12", errIndex: 0},
	{pattern: "yy", in: "7", errIndex: 0},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTests {
		p := MustCompile(tt.pattern, utc, enUS)
		ts, err := p.Parse(tt.in)
		if tt.errIndex < 0 {
			assert.Equal(t, nil, err, "%s %s", tt.pattern, tt.in)
			assert.Equal(t, tt.out, fmt.Sprintf("%v", ts.In(time.UTC)), "%s %s", tt.pattern, tt.in)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) with %q err = %v, want *ParseError", tt.in, tt.pattern, err)
			continue
		}
		assert.Equal(t, tt.errIndex, perr.Index, "%s %s", tt.pattern, tt.in)
	}
}

// quoted literal text matches case-insensitively like everything else
func TestQuotedLiteralCase(t *testing.T) {
	p := MustCompile("yyyy h 'o''clock' a", utc, enUS)
	ts, err := p.Parse("2023 5 O'CLOCK pm")
	assert.Equal(t, nil, err)
	assert.Equal(t, 17, ts.Hour())
}

// matrix ported from the reference compatibility suite: each row is run as
// entered, upper-cased and lower-cased, through both entry points.
func TestReferenceCompatMatrix(t *testing.T) {
	type row struct {
		pattern, in string
		valid       bool
	}
	rows := []row{
		{"z yyyy", "GMT 2010", true},
		{"z yyyy", "GMT-123 2010", false},
		{"z yyyy", "GMT-1234 2010", false},
		{"z yyyy", "GMT-12:34 2010", true},
		{"z yyyy", "GMT-1:23 2010", true},
		{"z yyyy", "-1234 2010", true},
		{"z yyyy", "-12:34 2010", false},
		{"z yyyy", "-123 2010", false},
		{"MM/dd/yyyy", "01/11/12", true},
		{"MM/dd/yy", "01/11/12", true},
	}
	for _, hours := range []string{"00", "01", "11", "12", "13", "23", "24", "25", "48"} {
		for _, pattern := range []string{"HH", "KK", "hh", "kk"} {
			rows = append(rows, row{pattern, hours, true})
		}
	}

	for _, r := range rows {
		p := MustCompile(r.pattern, utc, enUS)
		for _, in := range []string{r.in, strings.ToUpper(r.in), strings.ToLower(r.in)} {
			_, err := p.Parse(in)
			var perr *ParseError
			matched := !errors.As(err, &perr)
			assert.Equal(t, r.valid, matched, "%s %s", r.pattern, in)

			pos := NewPosition()
			_, _ = p.ParseIndex(in, pos)
			if r.valid {
				assert.Equal(t, -1, pos.ErrorIndex, "%s %s", r.pattern, in)
				assert.Equal(t, len(in), pos.Index, "%s %s", r.pattern, in)
			} else {
				assert.NotEqual(t, -1, pos.ErrorIndex, "%s %s", r.pattern, in)
			}
		}
	}
}

func TestParseIndex(t *testing.T) {
	p := MustCompile("yyyy-MM-dd", utc, enUS)

	// trailing input is fine in partial mode
	pos := NewPosition()
	ts, err := p.ParseIndex("2023-04-05 and more", pos)
	assert.Equal(t, nil, err)
	assert.Equal(t, 10, pos.Index)
	assert.Equal(t, -1, pos.ErrorIndex)
	assert.Equal(t, "2023-04-05 00:00:00 +0000 UTC", fmt.Sprintf("%v", ts.In(time.UTC)))

	// chained parses advance one shared cursor
	p = MustCompile("yyyy-MM-dd;", utc, enUS)
	pos = NewPosition()
	buf := "2023-04-05;2024-05-06;"
	first, err := p.ParseIndex(buf, pos)
	assert.Equal(t, nil, err)
	assert.Equal(t, 11, pos.Index)
	second, err := p.ParseIndex(buf, pos)
	assert.Equal(t, nil, err)
	assert.Equal(t, 22, pos.Index)
	assert.Equal(t, 2023, first.Year())
	assert.Equal(t, 2024, second.Year())

	// failure leaves the error offset behind
	pos = NewPosition()
	_, err = p.ParseIndex("2023-04x05;", pos)
	assert.NotEqual(t, nil, err)
	assert.Equal(t, 7, pos.ErrorIndex)
}

func TestFullParseRejectsTrailingInput(t *testing.T) {
	p := MustCompile("yyyyMMdd", utc, enUS)
	_, err := p.Parse("20230405x")
	var perr *ParseError
	if assert.True(t, errors.As(err, &perr)) {
		assert.Equal(t, 8, perr.Index)
	}
}

func TestCompileIdempotent(t *testing.T) {
	a := MustCompile("yyyy-MM-dd HH:mm:ss z", utc, enUS)
	b := MustCompile("yyyy-MM-dd HH:mm:ss z", utc, enUS)
	for _, in := range []string{"2023-04-05 17:24:09 UTC", "2023-04-05 17:24:09 GMT-1:23", "bad"} {
		t1, err1 := a.Parse(in)
		t2, err2 := b.Parse(in)
		assert.Equal(t, err1 == nil, err2 == nil, in)
		assert.True(t, t1.Equal(t2), in)
	}
}

func TestInstanceCache(t *testing.T) {
	a, err := Instance("yyyy-MM-dd", utc, enUS)
	assert.Equal(t, nil, err)
	b, err := Instance("yyyy-MM-dd", utc, enUS)
	assert.Equal(t, nil, err)
	assert.Same(t, a, b)

	c, err := Instance("yyyy-MM-dd", utc, language.German)
	assert.Equal(t, nil, err)
	assert.NotSame(t, a, c)

	_, err = Instance("yyyy-Q", utc, enUS)
	var perr *InvalidPatternError
	assert.True(t, errors.As(err, &perr))
}

func TestConcurrentReuse(t *testing.T) {
	p := MustCompile("yyyy-MM-dd HH:mm:ss z", utc, enUS)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				ts, err := p.Parse("2006-01-02 15:04:05 PST")
				if err != nil {
					t.Error(err)
					return
				}
				if got := fmt.Sprintf("%v", ts.In(time.UTC)); got != "2006-01-02 23:04:05 +0000 UTC" {
					t.Errorf("got %s", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCompileDefaultsToLocal(t *testing.T) {
	defer func(l *time.Location) { time.Local = l }(time.Local)
	time.Local = time.UTC

	p := MustCompile("yyyy-MM-dd HH:mm", nil, enUS)
	ts := p.MustParse("2006-01-02 15:04")
	assert.Equal(t, "2006-01-02 15:04:00 +0000 UTC", fmt.Sprintf("%v", ts))
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("'oops", utc, enUS) })
	assert.Panics(t, func() { MustCompile("yyyy", utc, enUS).MustParse("20xx") })
}
