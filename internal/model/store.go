package model

// MatchData is the finished in-memory model of one parsed log. It is
// built once by the parser and read-only afterwards; accessors return
// snapshots that callers must not modify.
type MatchData struct {
	match   Match
	players []Player
	events  []EventFact
	combat  []CombatFact
	economy []EconomyFact
	items   []ItemFact
	classes map[string]EntityClass
	report  ParseReport
}

// NewMatchData assembles the finished model. Players must be ordered by
// PlayerID and events by EventID; the specialized views are derived here
// so they always agree with the event table.
func NewMatchData(match Match, players []Player, events []EventFact, classes map[string]EntityClass, report ParseReport) *MatchData {
	return &MatchData{
		match:   match,
		players: players,
		events:  events,
		combat:  BuildCombatView(events),
		economy: BuildEconomyView(events),
		items:   BuildItemView(events),
		classes: classes,
		report:  report,
	}
}

// Match returns the match metadata.
func (d *MatchData) Match() Match { return d.match }

// Players returns the player registry, ordered by surrogate id.
func (d *MatchData) Players() []Player { return d.players }

// Events returns the full event-fact table in input order.
func (d *MatchData) Events() []EventFact { return d.events }

// CombatView returns the combat projection.
func (d *MatchData) CombatView() []CombatFact { return d.combat }

// EconomyView returns the reward projection.
func (d *MatchData) EconomyView() []EconomyFact { return d.economy }

// ItemView returns the item-purchase projection.
func (d *MatchData) ItemView() []ItemFact { return d.items }

// Classifications returns the actor-name classification map.
func (d *MatchData) Classifications() map[string]EntityClass { return d.classes }

// Report returns the parse report.
func (d *MatchData) Report() ParseReport { return d.report }

// Summary derives the lightweight listing record for this model.
func (d *MatchData) Summary() MatchSummary {
	return MatchSummary{
		MatchID:        d.match.MatchID,
		LogMode:        d.match.LogMode,
		StartTime:      d.match.StartTime,
		EndTime:        d.match.EndTime,
		PlayerCount:    len(d.players),
		EventCount:     len(d.events),
		LinesRead:      d.report.LinesRead,
		ParseErrors:    d.report.Skipped(),
		SchemaWarnings: d.report.Warned(),
	}
}

// EventBreakdown counts events per (type, subtype) pair, in first-seen order.
func (d *MatchData) EventBreakdown() []EventTypeCount {
	type key struct {
		t EventType
		s EventSubtype
	}
	idx := make(map[key]int)
	var out []EventTypeCount
	for _, e := range d.events {
		k := key{e.Type, e.Subtype}
		if i, ok := idx[k]; ok {
			out[i].Count++
			continue
		}
		idx[k] = len(out)
		out = append(out, EventTypeCount{Type: e.Type, Subtype: e.Subtype, Count: 1})
	}
	return out
}
