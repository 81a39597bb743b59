package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voros/smitelog/internal/model"
)

func newTestClassifier(playerNames ...string) *classifier {
	players := make(map[string]bool, len(playerNames))
	for _, n := range playerNames {
		players[n] = true
	}
	return newClassifier(DefaultEntitySets(), func(name string) bool { return players[name] })
}

func TestClassifyPlayerWinsOverPatterns(t *testing.T) {
	// A player who named themselves after a camp still classifies as Player.
	c := newTestClassifier("Harpy")
	if got := c.classify("Harpy"); got != model.ClassPlayer {
		t.Errorf("classify(Harpy) = %v, want Player", got)
	}
}

func TestClassifyKnownEntityNames(t *testing.T) {
	c := newTestClassifier("Alice")
	cases := []struct {
		name string
		want model.EntityClass
	}{
		{"Alice", model.ClassPlayer},
		{"Order Tower", model.ClassObjective},
		{"Chaos Phoenix", model.ClassObjective},
		{"Gold Fury", model.ClassObjective},
		{"Elder Harpy", model.ClassJungleCamp},
		{"Alpha Manticore", model.ClassJungleCamp},
		{"Fire Archer", model.ClassMinion},
		{"Swordsman", model.ClassMinion},
		{"Totally Unknown Thing", model.ClassOther},
	}
	for _, tc := range cases {
		if got := c.classify(tc.name); got != tc.want {
			t.Errorf("classify(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClassifyMatchesGeneratedNameVariants(t *testing.T) {
	c := newTestClassifier()
	// The game suffixes and prefixes entity names; pattern containment
	// must still classify them.
	cases := []struct {
		name string
		want model.EntityClass
	}{
		{"MinionArcher30", model.ClassMinion},
		{"Order Tower L1", model.ClassObjective},
		{"Harpy 02", model.ClassJungleCamp},
	}
	for _, tc := range cases {
		if got := c.classify(tc.name); got != tc.want {
			t.Errorf("classify(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClassifyIsDeterministicAndMemoized(t *testing.T) {
	c := newTestClassifier("Alice")

	first := c.classify("MinionArcher30")
	for i := 0; i < 3; i++ {
		if got := c.classify("MinionArcher30"); got != first {
			t.Fatalf("classification changed between calls: %v vs %v", got, first)
		}
	}
	if _, ok := c.memo["MinionArcher30"]; !ok {
		t.Error("expected memo entry after first classification")
	}
}

func TestClassifyEmptyNameIsNone(t *testing.T) {
	c := newTestClassifier()
	if got := c.classify(""); got != model.ClassNone {
		t.Errorf("classify(\"\") = %v, want ClassNone", got)
	}
}

func TestLoadEntitySetsOverridesOnlyGivenSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entities.toml")
	if err := os.WriteFile(path, []byte("objectives = [\"Obelisk\"]\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	sets, err := LoadEntitySets(path)
	if err != nil {
		t.Fatalf("LoadEntitySets: %v", err)
	}
	if len(sets.Objectives) != 1 || sets.Objectives[0] != "Obelisk" {
		t.Errorf("Objectives = %v, want [Obelisk]", sets.Objectives)
	}
	// Unspecified sections keep the defaults.
	if len(sets.Minions) == 0 || len(sets.JungleCamps) == 0 {
		t.Error("expected default minion/jungle sets to survive a partial override")
	}
}

func TestLoadEntitySetsMissingFile(t *testing.T) {
	if _, err := LoadEntitySets("/nonexistent/entities.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}
