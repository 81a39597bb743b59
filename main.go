// Package main is the entry point for the smitelog CLI tool, which parses
// SMITE 2 CombatLog files into a normalized match/player/event model.
package main

import "github.com/voros/smitelog/cmd"

func main() {
	cmd.Execute()
}
