// Package datefmt parses and prints dates with an explicit format pattern,
// reproducing the reference platform formatter's grammar: field letters
// such as yyyy, MM, HH collapse into typed matchers, literal text matches
// verbatim, and a compiled pattern is an immutable handle that can be
// shared across goroutines.
//
// Compile once, parse many:
//
//	p := datefmt.MustCompile("yyyy-MM-dd HH:mm", time.UTC, language.AmericanEnglish)
//	ts, err := p.Parse("2023-04-05 17:24")
package datefmt

import (
	"sync"
	"time"

	"golang.org/x/text/language"
)

// DefaultPivotYear is the two-digit-year century boundary: values below it
// land in the 2000s, values at or above it in the 1900s. Override per
// parser with WithPivotYear.
const DefaultPivotYear = 80

// Parser is a compiled pattern. It is immutable after Compile and safe for
// concurrent use; every parse call owns its own cursor and value table.
type Parser struct {
	pattern string
	loc     *time.Location
	names   *nameTable
	zones   ZoneResolver
	pivot   int
	elems   []element
}

// Option adjusts a Parser at compile time.
type Option func(*Parser)

// WithPivotYear overrides the two-digit-year century boundary.
func WithPivotYear(pivot int) Option {
	return func(p *Parser) { p.pivot = pivot }
}

// WithZoneResolver replaces the built-in timezone name table.
func WithZoneResolver(r ZoneResolver) Option {
	return func(p *Parser) { p.zones = r }
}

// Compile builds a parser for pattern. Parsed instants without a zone field
// are interpreted in loc (nil means time.Local); localized names come from
// the best supported table for lang. Malformed patterns fail here with an
// *InvalidPatternError; parse calls never see them.
func Compile(pattern string, loc *time.Location, lang language.Tag, opts ...Option) (*Parser, error) {
	elems, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}
	p := &Parser{
		pattern: pattern,
		loc:     loc,
		names:   tableFor(lang),
		zones:   defaultZones,
		pivot:   DefaultPivotYear,
		elems:   elems,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MustCompile is Compile for patterns known good at build time.
func MustCompile(pattern string, loc *time.Location, lang language.Tag, opts ...Option) *Parser {
	p, err := Compile(pattern, loc, lang, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

type instanceKey struct {
	pattern string
	zone    string
	tag     string
}

var instances sync.Map // instanceKey -> *Parser

// Instance returns a process-wide cached parser for the key
// (pattern, zone, lang). Handles are immutable, so one compile serves
// every caller.
func Instance(pattern string, loc *time.Location, lang language.Tag) (*Parser, error) {
	if loc == nil {
		loc = time.Local
	}
	key := instanceKey{pattern: pattern, zone: loc.String(), tag: lang.String()}
	if v, ok := instances.Load(key); ok {
		return v.(*Parser), nil
	}
	p, err := Compile(pattern, loc, lang)
	if err != nil {
		return nil, err
	}
	v, _ := instances.LoadOrStore(key, p)
	return v.(*Parser), nil
}

// Pattern returns the pattern the parser was compiled from.
func (p *Parser) Pattern() string { return p.pattern }

// Position tracks a cursor across partial parses. Index is the next unread
// offset; ErrorIndex stays -1 until a parse fails, then holds the offset of
// the first character no field could consume.
type Position struct {
	Index      int
	ErrorIndex int
}

// NewPosition returns a Position at offset 0 with no error recorded.
func NewPosition() *Position {
	return &Position{ErrorIndex: -1}
}

// run drives the element sequence from pos.Index. One pass, left to right,
// no backtracking: ambiguity is resolved by field widths at compile time,
// so the first failure is the definitive error offset. A literal that
// mismatches partway through reports partial progress, positioning the
// error at the offending character.
func (p *Parser) run(input string, pos *Position, vals *fieldValues) bool {
	idx := pos.Index
	for _, el := range p.elems {
		n, ok := p.tryMatch(el, input, idx, vals)
		if !ok {
			pos.ErrorIndex = idx + n
			return false
		}
		idx += n
	}
	pos.Index = idx
	return true
}

// Parse matches the entire input against the pattern. Unmatched or trailing
// characters fail with a *ParseError carrying their offset; a match without
// a year field fails with *IncompleteFieldsError.
func (p *Parser) Parse(input string) (time.Time, error) {
	pos := NewPosition()
	var vals fieldValues
	if !p.run(input, pos, &vals) {
		return time.Time{}, &ParseError{Pattern: p.pattern, Input: input, Index: pos.ErrorIndex}
	}
	if pos.Index != len(input) {
		return time.Time{}, &ParseError{Pattern: p.pattern, Input: input, Index: pos.Index}
	}
	return p.resolve(&vals)
}

// MustParse is Parse for inputs known good at build time.
func (p *Parser) MustParse(input string) time.Time {
	t, err := p.Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseIndex matches a prefix of input starting at pos.Index, leaving
// trailing input for the caller. On success pos.Index advances past the
// match; on a failed match pos.ErrorIndex is set and a *ParseError
// returned. Callers chaining several parses over one buffer reuse the same
// Position.
func (p *Parser) ParseIndex(input string, pos *Position) (time.Time, error) {
	var vals fieldValues
	if !p.run(input, pos, &vals) {
		return time.Time{}, &ParseError{Pattern: p.pattern, Input: input, Index: pos.ErrorIndex}
	}
	return p.resolve(&vals)
}
