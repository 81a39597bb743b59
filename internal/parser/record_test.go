package parser

import (
	"testing"

	"github.com/voros/smitelog/internal/model"
)

func TestParseRecordTagsKnownKinds(t *testing.T) {
	cases := []struct {
		line string
		kind Kind
	}{
		{`{"eventType":"start","matchID":"9001","logMode":"detailed"}`, KindStart},
		{`{"eventType":"playermsg","type":"RoleAssigned","sourceowner":"Alice"}`, KindRoleAssigned},
		{`{"eventType":"playermsg","type":"GodHovered","sourceowner":"Alice"}`, KindGodHovered},
		{`{"eventType":"playermsg","type":"GodPicked","sourceowner":"Alice"}`, KindGodPicked},
		{`{"eventType":"itemmsg","type":"ItemPurchase","sourceowner":"Alice"}`, KindItemPurchase},
		{`{"eventType":"CombatMsg","type":"Damage"}`, KindDamage},
		{`{"eventType":"CombatMsg","type":"CritDamage"}`, KindCritDamage},
		{`{"eventType":"CombatMsg","type":"CrowdControl"}`, KindCrowdControl},
		{`{"eventType":"CombatMsg","type":"Healing"}`, KindHealing},
		{`{"eventType":"CombatMsg","type":"KillingBlow"}`, KindKillingBlow},
		{`{"eventType":"RewardMsg","type":"Currency"}`, KindCurrency},
		{`{"eventType":"RewardMsg","type":"Experience"}`, KindExperience},
	}
	for _, c := range cases {
		rec, err := parseRecord(c.line, 1)
		if err != nil {
			t.Errorf("parseRecord(%s): %v", c.line, err)
			continue
		}
		if rec.Kind != c.kind {
			t.Errorf("parseRecord(%s) kind = %v, want %v", c.line, rec.Kind, c.kind)
		}
	}
}

func TestParseRecordUnknownSubtypePassesThroughAsOther(t *testing.T) {
	rec, err := parseRecord(`{"eventType":"CombatMsg","type":"FutureThing","sourceowner":"A"}`, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != KindOther {
		t.Errorf("kind = %v, want KindOther", rec.Kind)
	}
	if rec.Type != model.TypeCombat || rec.Subtype != "FutureThing" {
		t.Errorf("type/subtype = %v/%v", rec.Type, rec.Subtype)
	}
	if rec.Line != 7 {
		t.Errorf("line = %d, want 7", rec.Line)
	}
}

func TestParseRecordUnknownFamilyWithSubtypeIsOther(t *testing.T) {
	rec, err := parseRecord(`{"eventType":"shopmsg","type":"Refund"}`, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != KindOther {
		t.Errorf("kind = %v, want KindOther", rec.Kind)
	}
}

func TestParseRecordRejectsGarbage(t *testing.T) {
	if _, err := parseRecord(`this is not json`, 3); err == nil {
		t.Error("expected error for non-JSON line")
	}
	if _, err := parseRecord(`{"time":"2025.03.01-20.15.01"}`, 4); err == nil {
		t.Error("expected error for record with neither eventType nor type")
	}
}

func TestParseRecordCarriesAllFields(t *testing.T) {
	line := `{"eventType":"CombatMsg","type":"Damage","time":"2025.03.01-20.15.01",` +
		`"sourceowner":"Alice","targetowner":"Bob","locationx":"10.5","locationy":"-3",` +
		`"itemid":"42","itemname":"Basic Attack","value1":"120","value2":"30","text":"Alice hit Bob"}`
	rec, err := parseRecord(line, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.SourceOwner != "Alice" || rec.TargetOwner != "Bob" {
		t.Errorf("owners = %q/%q", rec.SourceOwner, rec.TargetOwner)
	}
	if rec.LocationX != "10.5" || rec.LocationY != "-3" {
		t.Errorf("location = %q/%q", rec.LocationX, rec.LocationY)
	}
	if rec.ItemID != "42" || rec.ItemName != "Basic Attack" {
		t.Errorf("item = %q/%q", rec.ItemID, rec.ItemName)
	}
	if rec.Value1 != "120" || rec.Value2 != "30" {
		t.Errorf("values = %q/%q", rec.Value1, rec.Value2)
	}
	if rec.Text != "Alice hit Bob" {
		t.Errorf("text = %q", rec.Text)
	}
}
