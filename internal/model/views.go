package model

import "strings"

// The view builders are pure projections of the event table filtered by
// event family. They can be re-run at any time and always yield the same
// output for the same events.

// BuildCombatView projects the CombatMsg events.
func BuildCombatView(events []EventFact) []CombatFact {
	var out []CombatFact
	for _, e := range events {
		if e.Type != TypeCombat {
			continue
		}
		out = append(out, CombatFact{
			EventID:        e.EventID,
			Subtype:        e.Subtype,
			Time:           e.Time,
			SourceName:     e.SourceName,
			SourcePlayerID: e.SourcePlayerID,
			SourceClass:    e.SourceClass,
			TargetName:     e.TargetName,
			TargetPlayerID: e.TargetPlayerID,
			TargetClass:    e.TargetClass,
			AbilityID:      e.ItemID,
			AbilityName:    e.ItemName,
			Amount:         e.Value1,
			Mitigated:      e.Value2,
			IsCritical:     e.Subtype == SubCritDamage,
			LocationX:      e.LocationX,
			LocationY:      e.LocationY,
		})
	}
	return out
}

// BuildEconomyView projects the RewardMsg events.
func BuildEconomyView(events []EventFact) []EconomyFact {
	var out []EconomyFact
	for _, e := range events {
		if e.Type != TypeReward {
			continue
		}
		out = append(out, EconomyFact{
			EventID:        e.EventID,
			Subtype:        e.Subtype,
			Time:           e.Time,
			SourceName:     e.SourceName,
			SourcePlayerID: e.SourcePlayerID,
			SourceClass:    e.SourceClass,
			TargetName:     e.TargetName,
			TargetClass:    e.TargetClass,
			RewardType:     strings.ToLower(e.ItemName),
			Amount:         e.Value1,
			LocationX:      e.LocationX,
			LocationY:      e.LocationY,
		})
	}
	return out
}

// BuildItemView projects the itemmsg events.
func BuildItemView(events []EventFact) []ItemFact {
	var out []ItemFact
	for _, e := range events {
		if e.Type != TypeItem {
			continue
		}
		out = append(out, ItemFact{
			EventID:        e.EventID,
			Time:           e.Time,
			SourceName:     e.SourceName,
			SourcePlayerID: e.SourcePlayerID,
			ItemID:         e.ItemID,
			ItemName:       e.ItemName,
			LocationX:      e.LocationX,
			LocationY:      e.LocationY,
		})
	}
	return out
}
