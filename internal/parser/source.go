package parser

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single log line; combat logs occasionally carry
// long descriptive text fields.
const maxLineBytes = 1024 * 1024

// lineSource yields cleaned log lines one at a time: BOM stripped,
// carriage returns and the trailing per-line comma removed. Blank lines
// are skipped but still advance the line counter, so reported line
// numbers always match the source file.
type lineSource struct {
	sc   *bufio.Scanner
	line int
}

func newLineSource(r io.Reader) *lineSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &lineSource{sc: sc}
}

// Next returns the next non-blank cleaned line and its 1-based source
// line number. ok is false at end of input or on a read error; check Err.
func (ls *lineSource) Next() (text string, line int, ok bool) {
	for ls.sc.Scan() {
		ls.line++
		cleaned := cleanLine(ls.sc.Text())
		if cleaned == "" {
			continue
		}
		return cleaned, ls.line, true
	}
	return "", 0, false
}

// LinesRead returns the number of source lines consumed so far.
func (ls *lineSource) LinesRead() int { return ls.line }

// Err returns the underlying read error, if any.
func (ls *lineSource) Err() error { return ls.sc.Err() }

// cleanLine prepares one raw line for JSON decoding.
func cleanLine(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ",")
	return s
}
