package model

// ParseError records one line that could not be parsed into a record.
// The line is skipped; parsing continues.
type ParseError struct {
	Line    int    // 1-based source line number
	Excerpt string // truncated copy of the offending line
	Reason  string
}

// SchemaWarning records a recognized record with a missing or malformed
// field. The field is substituted with null and parsing continues.
type SchemaWarning struct {
	Line   int
	Field  string
	Reason string
}

// ParseReport aggregates every recoverable condition observed during one
// parse. None of these conditions reach the caller as an error; only a
// failure to read the input aborts a parse.
type ParseReport struct {
	LinesRead     int // total lines consumed from the source
	RecordsParsed int // lines that produced an EventFact

	ParseErrors    []ParseError
	SchemaWarnings []SchemaWarning

	// UnknownActors lists distinct actor names that matched no player and
	// no known entity pattern, sorted. Facts referencing them carry the
	// Other class and null player keys.
	UnknownActors []string
}

// Skipped returns the number of input lines dropped as unparsable.
func (r ParseReport) Skipped() int { return len(r.ParseErrors) }

// Warned returns the number of schema warnings emitted.
func (r ParseReport) Warned() int { return len(r.SchemaWarnings) }
