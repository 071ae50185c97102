package datefmt

import "fmt"

// InvalidPatternError reports a malformed format pattern. Index is the
// offset of the offending character within the pattern.
type InvalidPatternError struct {
	Pattern string
	Index   int
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("datefmt: invalid pattern %q at index %d: %s", e.Pattern, e.Index, e.Reason)
}

// ParseError reports an input that does not match the compiled pattern.
// Index is the offset of the first character no field could consume, or,
// for a match that leaves trailing input, the offset of the first
// unconsumed character.
type ParseError struct {
	Pattern string
	Input   string
	Index   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("datefmt: cannot parse %q with %q: no match at index %d", e.Input, e.Pattern, e.Index)
}

// IncompleteFieldsError reports a pattern whose matched fields cannot
// produce an absolute instant. A year field is required; everything else
// has a documented default.
type IncompleteFieldsError struct {
	Pattern string
}

func (e *IncompleteFieldsError) Error() string {
	return fmt.Sprintf("datefmt: pattern %q supplies no date fields", e.Pattern)
}
