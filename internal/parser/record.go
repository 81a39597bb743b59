package parser

import (
	"encoding/json"
	"fmt"

	"github.com/voros/smitelog/internal/model"
)

// Kind is the closed set of record variants the pipeline handles. Unknown
// subtypes of known families, and unknown families that still carry a
// subtype field, pass through as KindOther rather than failing.
type Kind int

const (
	KindOther Kind = iota
	KindStart
	KindRoleAssigned
	KindGodHovered
	KindGodPicked
	KindItemPurchase
	KindDamage
	KindCritDamage
	KindCrowdControl
	KindHealing
	KindKillingBlow
	KindCurrency
	KindExperience
)

// Record is one tagged raw record. All payload fields are kept as the
// source strings; typing happens in the normalizer.
type Record struct {
	Line    int
	Kind    Kind
	Type    model.EventType
	Subtype model.EventSubtype

	MatchID string
	LogMode string

	Time        string
	SourceOwner string
	TargetOwner string
	LocationX   string
	LocationY   string
	ItemID      string
	ItemName    string
	Value1      string
	Value2      string
	Text        string
}

// rawLine mirrors the superset field set of one log line.
type rawLine struct {
	EventType   string `json:"eventType"`
	Type        string `json:"type"`
	MatchID     string `json:"matchID"`
	LogMode     string `json:"logMode"`
	Time        string `json:"time"`
	SourceOwner string `json:"sourceowner"`
	TargetOwner string `json:"targetowner"`
	LocationX   string `json:"locationx"`
	LocationY   string `json:"locationy"`
	ItemID      string `json:"itemid"`
	ItemName    string `json:"itemname"`
	Value1      string `json:"value1"`
	Value2      string `json:"value2"`
	Text        string `json:"text"`
}

// parseRecord decodes one cleaned line into a tagged Record. It fails
// only when the line is not valid JSON or identifies neither an event
// type nor a subtype; such lines are reported and skipped by the caller.
func parseRecord(line string, lineNo int) (Record, error) {
	var raw rawLine
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Record{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if raw.EventType == "" && raw.Type == "" {
		return Record{}, fmt.Errorf("record has neither eventType nor type")
	}

	rec := Record{
		Line:        lineNo,
		Type:        model.EventType(raw.EventType),
		Subtype:     model.EventSubtype(raw.Type),
		MatchID:     raw.MatchID,
		LogMode:     raw.LogMode,
		Time:        raw.Time,
		SourceOwner: raw.SourceOwner,
		TargetOwner: raw.TargetOwner,
		LocationX:   raw.LocationX,
		LocationY:   raw.LocationY,
		ItemID:      raw.ItemID,
		ItemName:    raw.ItemName,
		Value1:      raw.Value1,
		Value2:      raw.Value2,
		Text:        raw.Text,
	}
	rec.Kind = kindOf(rec.Type, rec.Subtype)
	return rec, nil
}

// kindOf maps an (eventType, subtype) pair onto the closed variant set.
func kindOf(t model.EventType, s model.EventSubtype) Kind {
	switch t {
	case model.TypeStart:
		return KindStart
	case model.TypePlayer:
		switch s {
		case model.SubRoleAssigned:
			return KindRoleAssigned
		case model.SubGodHovered:
			return KindGodHovered
		case model.SubGodPicked:
			return KindGodPicked
		}
	case model.TypeItem:
		if s == model.SubItemPurchase {
			return KindItemPurchase
		}
	case model.TypeCombat:
		switch s {
		case model.SubDamage:
			return KindDamage
		case model.SubCritDamage:
			return KindCritDamage
		case model.SubCrowdControl:
			return KindCrowdControl
		case model.SubHealing:
			return KindHealing
		case model.SubKillingBlow:
			return KindKillingBlow
		}
	case model.TypeReward:
		switch s {
		case model.SubCurrency:
			return KindCurrency
		case model.SubExperience:
			return KindExperience
		}
	}
	return KindOther
}
