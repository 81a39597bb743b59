package model

import (
	"reflect"
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func sampleEvents() []EventFact {
	t0 := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	return []EventFact{
		{EventID: 1, Type: TypeStart, MatchID: "m1"},
		{
			EventID: 2, Type: TypeCombat, Subtype: SubCritDamage, Time: t0,
			SourceName: "Alice", SourcePlayerID: intp(1), SourceClass: ClassPlayer,
			TargetName: "Bob", TargetPlayerID: intp(2), TargetClass: ClassPlayer,
			ItemID: "5", ItemName: "Basic Attack",
			Value1: f64(240), Value2: f64(60),
		},
		{
			EventID: 3, Type: TypeReward, Subtype: SubCurrency, Time: t0,
			SourceName: "Alice", SourcePlayerID: intp(1), SourceClass: ClassPlayer,
			TargetName: "MinionArcher30", TargetClass: ClassMinion,
			ItemName: "Gold", Value1: f64(52),
		},
		{
			EventID: 4, Type: TypeItem, Subtype: SubItemPurchase, Time: t0,
			SourceName: "Alice", SourcePlayerID: intp(1), SourceClass: ClassPlayer,
			ItemID: "501", ItemName: "Warrior Tabi",
			LocationX: f64(100.5), LocationY: f64(-42.25),
		},
	}
}

func TestBuildCombatView(t *testing.T) {
	combat := BuildCombatView(sampleEvents())
	if len(combat) != 1 {
		t.Fatalf("combat rows = %d, want 1", len(combat))
	}
	c := combat[0]
	if c.EventID != 2 {
		t.Errorf("EventID = %d, want 2", c.EventID)
	}
	if !c.IsCritical {
		t.Error("CritDamage must mark IsCritical")
	}
	if c.AbilityName != "Basic Attack" || c.AbilityID != "5" {
		t.Errorf("ability = %q/%q", c.AbilityName, c.AbilityID)
	}
	if c.Amount == nil || *c.Amount != 240 || c.Mitigated == nil || *c.Mitigated != 60 {
		t.Errorf("amount/mitigated = %v/%v", c.Amount, c.Mitigated)
	}
}

func TestBuildEconomyViewNormalizesRewardType(t *testing.T) {
	econ := BuildEconomyView(sampleEvents())
	if len(econ) != 1 {
		t.Fatalf("economy rows = %d, want 1", len(econ))
	}
	if econ[0].RewardType != "gold" {
		t.Errorf("reward type = %q, want gold", econ[0].RewardType)
	}
	if econ[0].TargetClass != ClassMinion {
		t.Errorf("target class = %v", econ[0].TargetClass)
	}
}

func TestBuildItemView(t *testing.T) {
	items := BuildItemView(sampleEvents())
	if len(items) != 1 {
		t.Fatalf("item rows = %d, want 1", len(items))
	}
	if items[0].ItemName != "Warrior Tabi" {
		t.Errorf("item = %q", items[0].ItemName)
	}
}

func TestViewsAreRebuildable(t *testing.T) {
	events := sampleEvents()
	if !reflect.DeepEqual(BuildCombatView(events), BuildCombatView(events)) {
		t.Error("combat view not referentially transparent")
	}
	if !reflect.DeepEqual(BuildEconomyView(events), BuildEconomyView(events)) {
		t.Error("economy view not referentially transparent")
	}
}

func TestMatchDataDerivesViewsAndSummary(t *testing.T) {
	events := sampleEvents()
	match := Match{
		MatchID: "m1", LogMode: "detailed",
		StartTime: time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 1, 20, 30, 0, 0, time.UTC),
	}
	players := []Player{{PlayerID: 1, PlayerName: "Alice"}, {PlayerID: 2, PlayerName: "Bob"}}
	report := ParseReport{LinesRead: 5, RecordsParsed: 4,
		ParseErrors: []ParseError{{Line: 3, Reason: "invalid JSON"}}}

	d := NewMatchData(match, players, events, map[string]EntityClass{"Alice": ClassPlayer}, report)

	if len(d.CombatView()) != 1 || len(d.EconomyView()) != 1 || len(d.ItemView()) != 1 {
		t.Error("derived views wrong")
	}

	s := d.Summary()
	if s.MatchID != "m1" || s.PlayerCount != 2 || s.EventCount != 4 || s.ParseErrors != 1 {
		t.Errorf("summary = %+v", s)
	}

	if got := match.Duration(); got != 30*time.Minute {
		t.Errorf("duration = %v, want 30m", got)
	}
}

func TestEventBreakdownCountsPairs(t *testing.T) {
	events := append(sampleEvents(), EventFact{EventID: 5, Type: TypeCombat, Subtype: SubCritDamage})
	d := NewMatchData(Match{MatchID: "m1"}, nil, events, nil, ParseReport{})

	counts := d.EventBreakdown()
	want := map[string]int{
		"start/":               1,
		"CombatMsg/CritDamage": 2,
		"RewardMsg/Currency":   1,
		"itemmsg/ItemPurchase": 1,
	}
	got := make(map[string]int)
	for _, c := range counts {
		got[string(c.Type)+"/"+string(c.Subtype)] = c.Count
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("breakdown[%s] = %d, want %d", k, got[k], v)
		}
	}
}
