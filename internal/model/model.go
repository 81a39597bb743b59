package model

import "time"

// EventType is the top-level event family from the log's eventType field.
type EventType string

const (
	TypeStart  EventType = "start"
	TypePlayer EventType = "playermsg"
	TypeItem   EventType = "itemmsg"
	TypeCombat EventType = "CombatMsg"
	TypeReward EventType = "RewardMsg"
)

// EventSubtype is the log's type field. The empty subtype is used for
// start records, which carry none.
type EventSubtype string

const (
	SubNone         EventSubtype = ""
	SubRoleAssigned EventSubtype = "RoleAssigned"
	SubGodHovered   EventSubtype = "GodHovered"
	SubGodPicked    EventSubtype = "GodPicked"
	SubItemPurchase EventSubtype = "ItemPurchase"
	SubDamage       EventSubtype = "Damage"
	SubCritDamage   EventSubtype = "CritDamage"
	SubCrowdControl EventSubtype = "CrowdControl"
	SubHealing      EventSubtype = "Healing"
	SubKillingBlow  EventSubtype = "KillingBlow"
	SubCurrency     EventSubtype = "Currency"
	SubExperience   EventSubtype = "Experience"
)

// EntityClass classifies an actor name seen as a source or target.
type EntityClass int

const (
	ClassNone       EntityClass = 0 // no actor in that position
	ClassPlayer     EntityClass = 1
	ClassObjective  EntityClass = 2
	ClassJungleCamp EntityClass = 3
	ClassMinion     EntityClass = 4
	ClassOther      EntityClass = 5
)

func (c EntityClass) String() string {
	switch c {
	case ClassPlayer:
		return "Player"
	case ClassObjective:
		return "Objective"
	case ClassJungleCamp:
		return "JungleCamp"
	case ClassMinion:
		return "Minion"
	case ClassOther:
		return "Other"
	default:
		return ""
	}
}

// Match holds the metadata of one parsed match. StartTime/EndTime are the
// earliest and latest parseable event timestamps observed in the log; the
// zero time means no timestamp was seen.
type Match struct {
	MatchID   string
	LogMode   string
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns the observed time span of the match, 0 if unknown.
func (m Match) Duration() time.Duration {
	if m.StartTime.IsZero() || m.EndTime.IsZero() {
		return 0
	}
	return m.EndTime.Sub(m.StartTime)
}

// Player is one resolved match participant. Identity is anchored on the
// in-game name, which is unique within a match; PlayerID is a surrogate
// assigned in order of first sighting.
type Player struct {
	PlayerID   int
	PlayerName string
	GodID      string // empty until a hover or pick is seen
	GodName    string
	Role       string
	TeamID     *int // nil until a role/god record carries a team

	// GodPicked records that GodID/GodName came from a GodPicked record
	// rather than a hover, so a later hover cannot supersede it.
	GodPicked bool
}

// EventFact is the unified superset-schema record for one input line.
// Nullable numerics are pointers so that "missing" stays distinguishable
// from zero. Time is the zero time when the raw timestamp did not parse;
// RawTime always preserves the source string verbatim.
type EventFact struct {
	EventID int // 1-based, in input order over valid records
	Line    int // source line number, 1-based over all lines
	MatchID string

	Type    EventType
	Subtype EventSubtype

	Time    time.Time
	RawTime string

	SourceName     string
	SourcePlayerID *int
	SourceClass    EntityClass

	TargetName     string
	TargetPlayerID *int
	TargetClass    EntityClass

	LocationX *float64
	LocationY *float64

	ItemID   string
	ItemName string

	Value1 *float64
	Value2 *float64

	RawText string
}

// HasTarget reports whether the source record named a target actor.
// Target presence follows the raw field, not the event family, so
// unrecognized families still keep their targets.
func (e EventFact) HasTarget() bool {
	return e.TargetName != ""
}

// CombatFact is the combat projection of an EventFact.
type CombatFact struct {
	EventID int
	Subtype EventSubtype
	Time    time.Time

	SourceName     string
	SourcePlayerID *int
	SourceClass    EntityClass
	TargetName     string
	TargetPlayerID *int
	TargetClass    EntityClass

	AbilityID   string
	AbilityName string

	Amount     *float64 // damage, healing or CC value, per subtype
	Mitigated  *float64
	IsCritical bool

	LocationX *float64
	LocationY *float64
}

// EconomyFact is the reward projection of an EventFact.
type EconomyFact struct {
	EventID int
	Subtype EventSubtype
	Time    time.Time

	SourceName     string
	SourcePlayerID *int
	SourceClass    EntityClass
	TargetName     string
	TargetClass    EntityClass

	RewardType string // normalized lower-case itemname
	Amount     *float64

	LocationX *float64
	LocationY *float64
}

// ItemFact is the item-purchase projection of an EventFact.
type ItemFact struct {
	EventID int
	Time    time.Time

	SourceName     string
	SourcePlayerID *int

	ItemID   string
	ItemName string

	LocationX *float64
	LocationY *float64
}

// MatchSummary is a lightweight record for list/show commands.
type MatchSummary struct {
	MatchID        string
	LogMode        string
	StartTime      time.Time
	EndTime        time.Time
	PlayerCount    int
	EventCount     int
	LinesRead      int
	ParseErrors    int
	SchemaWarnings int
}

// EventTypeCount is one row of a per-type event breakdown.
type EventTypeCount struct {
	Type    EventType
	Subtype EventSubtype
	Count   int
}
