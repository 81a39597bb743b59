package parser

import (
	"sort"
	"time"

	"github.com/voros/smitelog/internal/model"
)

// resolution is the per-parse registry state: the match record and the
// name-keyed player map. It is created fresh for every parse, so
// concurrent parses never share state.
type resolution struct {
	match     model.Match
	haveMatch bool

	players map[string]*model.Player
	nextID  int
}

func newResolution() *resolution {
	return &resolution{
		match:   model.Match{MatchID: "unknown", LogMode: "unknown"},
		players: make(map[string]*model.Player),
		nextID:  1,
	}
}

// observe folds one record into the registries. Records arrive in input
// order; role reassignment and re-picks are last-wins, while a hover
// never supersedes an earlier pick.
func (r *resolution) observe(rec Record) {
	switch rec.Kind {
	case KindStart:
		// First start record wins; duplicates are ignored.
		if !r.haveMatch {
			r.haveMatch = true
			if rec.MatchID != "" {
				r.match.MatchID = rec.MatchID
			}
			if rec.LogMode != "" {
				r.match.LogMode = rec.LogMode
			}
		}

	case KindRoleAssigned:
		p := r.upsert(rec.SourceOwner)
		if p == nil {
			return
		}
		p.Role = rec.ItemName
		r.setTeam(p, rec.Value1)

	case KindGodHovered:
		p := r.upsert(rec.SourceOwner)
		if p == nil {
			return
		}
		if !p.GodPicked {
			p.GodID = rec.ItemID
			p.GodName = rec.ItemName
		}
		r.setTeam(p, rec.Value1)

	case KindGodPicked:
		p := r.upsert(rec.SourceOwner)
		if p == nil {
			return
		}
		p.GodID = rec.ItemID
		p.GodName = rec.ItemName
		p.GodPicked = true
		r.setTeam(p, rec.Value1)
	}
}

// observeTime extends the match's observed time window.
func (r *resolution) observeTime(t time.Time) {
	if t.IsZero() {
		return
	}
	if r.match.StartTime.IsZero() || t.Before(r.match.StartTime) {
		r.match.StartTime = t
	}
	if r.match.EndTime.IsZero() || t.After(r.match.EndTime) {
		r.match.EndTime = t
	}
}

// upsert returns the Player for name, creating it with the next surrogate
// id on first sighting. A blank name anchors no identity and is ignored.
func (r *resolution) upsert(name string) *model.Player {
	if name == "" {
		return nil
	}
	if p, ok := r.players[name]; ok {
		return p
	}
	p := &model.Player{PlayerID: r.nextID, PlayerName: name}
	r.nextID++
	r.players[name] = p
	return p
}

func (r *resolution) setTeam(p *model.Player, value string) {
	if team, ok := parseInt(value); ok && team != nil {
		p.TeamID = team
	}
}

// isPlayer reports whether name belongs to the resolved registry.
func (r *resolution) isPlayer(name string) bool {
	_, ok := r.players[name]
	return ok
}

// playerID returns the surrogate id for name, nil when unresolved.
func (r *resolution) playerID(name string) *int {
	p, ok := r.players[name]
	if !ok {
		return nil
	}
	id := p.PlayerID
	return &id
}

// playerList returns the registry as a slice ordered by surrogate id.
func (r *resolution) playerList() []model.Player {
	out := make([]model.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}
