package parser

import (
	"fmt"
	"sort"

	"github.com/voros/smitelog/internal/model"
)

// factBuilder assembles the unified event-fact table from tagged records,
// attaching resolved player keys and entity classes. It runs after the
// resolution pass, so every role/pick in the log has already been seen.
type factBuilder struct {
	res     *resolution
	cls     *classifier
	rep     *model.ParseReport
	unknown map[string]struct{}
}

func newFactBuilder(res *resolution, cls *classifier, rep *model.ParseReport) *factBuilder {
	return &factBuilder{res: res, cls: cls, rep: rep, unknown: make(map[string]struct{})}
}

// build produces one EventFact per record, in order. Event ids are a
// 1-based counter over the records, so source order is preserved even
// when timestamps tie or are missing.
func (b *factBuilder) build(records []Record) []model.EventFact {
	facts := make([]model.EventFact, 0, len(records))
	for _, rec := range records {
		facts = append(facts, b.buildOne(rec, len(facts)+1))
	}

	names := make([]string, 0, len(b.unknown))
	for n := range b.unknown {
		names = append(names, n)
	}
	sort.Strings(names)
	b.rep.UnknownActors = names

	return facts
}

func (b *factBuilder) buildOne(rec Record, id int) model.EventFact {
	f := model.EventFact{
		EventID:  id,
		Line:     rec.Line,
		MatchID:  b.res.match.MatchID,
		Type:     rec.Type,
		Subtype:  rec.Subtype,
		RawTime:  rec.Time,
		ItemID:   rec.ItemID,
		ItemName: rec.ItemName,
		RawText:  rec.Text,
	}

	t, ok := parseTimestamp(rec.Time)
	if !ok {
		b.warn(rec.Line, "time", "unparsable timestamp %q", rec.Time)
	}
	f.Time = t

	f.LocationX, f.LocationY = b.location(rec)
	f.Value1 = b.number(rec.Line, "value1", rec.Value1)
	f.Value2 = b.number(rec.Line, "value2", rec.Value2)

	if rec.SourceOwner != "" {
		f.SourceName = rec.SourceOwner
		f.SourceClass = b.classify(rec.SourceOwner)
		if f.SourceClass == model.ClassPlayer {
			f.SourcePlayerID = b.res.playerID(rec.SourceOwner)
		}
	}
	if rec.TargetOwner != "" {
		f.TargetName = rec.TargetOwner
		f.TargetClass = b.classify(rec.TargetOwner)
		if f.TargetClass == model.ClassPlayer {
			f.TargetPlayerID = b.res.playerID(rec.TargetOwner)
		}
	}

	return f
}

// location parses the coordinate pair. The source schema emits both
// coordinates or neither; a one-sided record is a schema warning.
func (b *factBuilder) location(rec Record) (x, y *float64) {
	if (rec.LocationX == "") != (rec.LocationY == "") {
		b.warn(rec.Line, "location", "locationx/locationy presence mismatch")
	}
	x = b.number(rec.Line, "locationx", rec.LocationX)
	y = b.number(rec.Line, "locationy", rec.LocationY)
	return x, y
}

func (b *factBuilder) number(line int, field, raw string) *float64 {
	v, ok := parseFloat(raw)
	if !ok {
		b.warn(line, field, "unparsable numeric %q", raw)
	}
	return v
}

// classify wraps the classifier and tracks names with no identity
// information at all, for the parse report.
func (b *factBuilder) classify(name string) model.EntityClass {
	cls := b.cls.classify(name)
	if cls == model.ClassOther {
		b.unknown[name] = struct{}{}
	}
	return cls
}

func (b *factBuilder) warn(line int, field, format string, args ...any) {
	b.rep.SchemaWarnings = append(b.rep.SchemaWarnings, model.SchemaWarning{
		Line:   line,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	})
}
