// Package parser turns a SMITE 2 CombatLog stream into a normalized
// relational model: one match record, a resolved player registry, and a
// typed event-fact table with specialized combat/economy/item views.
//
// The pipeline is strictly sequential. A first pass over the tagged
// records resolves match metadata and player identities (role, god,
// team); a second pass builds the event facts, attaching player foreign
// keys and entity classifications. Every recoverable problem — bad
// lines, malformed fields, actors with no identity — lands in the parse
// report instead of failing the parse; only a read error aborts.
package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/voros/smitelog/internal/model"
)

// excerptLen bounds the copy of a bad line kept in the parse report.
const excerptLen = 80

// Options configure a parse invocation.
type Options struct {
	// Entities overrides the classifier name sets. The zero value means
	// the built-in SMITE 2 sets.
	Entities EntitySets
}

func (o Options) entitySets() EntitySets {
	if len(o.Entities.Objectives) == 0 && len(o.Entities.JungleCamps) == 0 && len(o.Entities.Minions) == 0 {
		return DefaultEntitySets()
	}
	return o.Entities
}

// ParseFile parses the combat log at path.
func ParseFile(path string, opts Options) (*model.MatchData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	return Parse(f, opts)
}

// Parse runs the full pipeline over r. It returns an error only when the
// stream itself cannot be read; a log full of garbage still yields a
// (possibly empty) model whose report carries the parse errors.
func Parse(r io.Reader, opts Options) (*model.MatchData, error) {
	var report model.ParseReport

	// Line pass: decode and tag every parsable record, in order.
	src := newLineSource(r)
	var records []Record
	for {
		line, lineNo, ok := src.Next()
		if !ok {
			break
		}
		rec, err := parseRecord(line, lineNo)
		if err != nil {
			report.ParseErrors = append(report.ParseErrors, model.ParseError{
				Line:    lineNo,
				Excerpt: excerpt(line),
				Reason:  err.Error(),
			})
			continue
		}
		records = append(records, rec)
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	report.LinesRead = src.LinesRead()
	report.RecordsParsed = len(records)

	// Resolution pass: match metadata, player registry, time window.
	res := newResolution()
	for _, rec := range records {
		res.observe(rec)
		if t, ok := parseTimestamp(rec.Time); ok {
			res.observeTime(t)
		}
	}

	// Fact pass: classify actors and build the event table.
	cls := newClassifier(opts.entitySets(), res.isPlayer)
	facts := newFactBuilder(res, cls, &report).build(records)

	classes := make(map[string]model.EntityClass, len(cls.memo))
	for name, c := range cls.memo {
		classes[name] = c
	}

	return model.NewMatchData(res.match, res.playerList(), facts, classes, report), nil
}

func excerpt(line string) string {
	if len(line) <= excerptLen {
		return line
	}
	return line[:excerptLen] + "..."
}
