package parser

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/voros/smitelog/internal/model"
)

// EntitySets holds the name patterns that drive non-player actor
// classification. A name matches a pattern when it equals or contains it,
// so variants like "MinionArcher30" or "Alpha Harpy" resolve without
// enumerating every suffix the game generates.
type EntitySets struct {
	Objectives  []string `toml:"objectives"`
	JungleCamps []string `toml:"jungle_camps"`
	Minions     []string `toml:"minions"`
}

// DefaultEntitySets returns the built-in SMITE 2 entity name sets.
func DefaultEntitySets() EntitySets {
	return EntitySets{
		Objectives: []string{
			"Order Titan", "Chaos Titan",
			"Order Tower", "Chaos Tower",
			"Order Phoenix", "Chaos Phoenix",
			"Gold Fury", "Pyromancer", "Minotaur",
		},
		JungleCamps: []string{
			"Harpy", "Elder Harpy", "Roaming Harpy",
			"Chimera", "Alpha Chimera",
			"Manticore", "Alpha Manticore",
			"Centaur", "Alpha Centaur",
			"Scorpion", "Alpha Scorpion",
			"Satyr", "Elder Satyr",
			"Cyclops Warrior", "Rogue Cyclops",
			"Queen Naga", "Naga Soldier",
		},
		Minions: []string{
			"Archer", "Champion Archer", "Fire Archer",
			"Brute", "Fire Brute",
			"Swordsman", "Fire Swordsman",
		},
	}
}

// LoadEntitySets reads an EntitySets override from a TOML file. Sections
// left empty fall back to the built-in sets.
func LoadEntitySets(path string) (EntitySets, error) {
	sets := DefaultEntitySets()
	var file EntitySets
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return EntitySets{}, fmt.Errorf("load entity sets: %w", err)
	}
	if len(file.Objectives) > 0 {
		sets.Objectives = file.Objectives
	}
	if len(file.JungleCamps) > 0 {
		sets.JungleCamps = file.JungleCamps
	}
	if len(file.Minions) > 0 {
		sets.Minions = file.Minions
	}
	return sets, nil
}

// classifier assigns every actor name exactly one EntityClass for the
// duration of a run. Lookups are memoized; classification order is
// player, objective, jungle camp, minion, other — first match wins.
type classifier struct {
	isPlayer func(string) bool
	sets     EntitySets
	memo     map[string]model.EntityClass
}

func newClassifier(sets EntitySets, isPlayer func(string) bool) *classifier {
	return &classifier{
		isPlayer: isPlayer,
		sets:     sets,
		memo:     make(map[string]model.EntityClass),
	}
}

func (c *classifier) classify(name string) model.EntityClass {
	if name == "" {
		return model.ClassNone
	}
	if cls, ok := c.memo[name]; ok {
		return cls
	}
	cls := c.classifyNew(name)
	c.memo[name] = cls
	return cls
}

func (c *classifier) classifyNew(name string) model.EntityClass {
	switch {
	case c.isPlayer(name):
		return model.ClassPlayer
	case matchAny(name, c.sets.Objectives):
		return model.ClassObjective
	case matchAny(name, c.sets.JungleCamps):
		return model.ClassJungleCamp
	case matchAny(name, c.sets.Minions):
		return model.ClassMinion
	default:
		return model.ClassOther
	}
}

func matchAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if name == p || strings.Contains(name, p) {
			return true
		}
	}
	return false
}
