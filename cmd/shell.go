package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voros/smitelog/internal/report"
	"github.com/voros/smitelog/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the database. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	cGreeting.Println("smitelog shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("smitelog")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "list":
			shellList(db)
		case "show":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: show <match-id-prefix>")
				continue
			}
			shellShow(db, args[0])
		case "players":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: players <match-id-prefix>")
				continue
			}
			shellPlayers(db, args[0])
		case "report":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: report <match-id-prefix>")
				continue
			}
			shellReport(db, args[0])
		case "sql":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: sql <query>")
				continue
			}
			shellSQL(db, strings.Join(args, " "))
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q — type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"list", "list all stored matches"},
		{"show <match-id-prefix>", "show a match's players and event breakdown"},
		{"players <match-id-prefix>", "show only the player registry"},
		{"report <match-id-prefix>", "show the match's parse report"},
		{"sql <query>", "run a raw SQL query"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-28s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellList(db *storage.DB) {
	matches, err := db.ListMatches()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		cMuted.Println("No matches stored yet.")
		return
	}
	cHeader.Fprintf(os.Stdout, "%-20s  %-10s  %-19s  %7s  %7s\n",
		"MATCH", "MODE", "START", "PLAYERS", "EVENTS")
	cMuted.Fprintf(os.Stdout, "%-20s  %-10s  %-19s  %7s  %7s\n",
		"────────────────────", "──────────", "───────────────────", "───────", "───────")
	for _, m := range matches {
		fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-19s  %7d  %7d\n",
			m.MatchID, m.LogMode, listTime(m), m.PlayerCount, m.EventCount)
	}
}

func shellShow(db *storage.DB, prefix string) {
	match, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if match == nil {
		cWarn.Fprintf(os.Stderr, "no match found with prefix %q\n", prefix)
		return
	}
	players, err := db.GetPlayers(match.MatchID)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	breakdown, err := db.GetEventBreakdown(match.MatchID)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintMatchSummary(os.Stdout, *match)
	report.PrintPlayerTable(os.Stdout, players)
	report.PrintEventBreakdown(os.Stdout, breakdown)
}

func shellPlayers(db *storage.DB, prefix string) {
	match, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if match == nil {
		cWarn.Fprintf(os.Stderr, "no match found with prefix %q\n", prefix)
		return
	}
	players, err := db.GetPlayers(match.MatchID)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintPlayerTable(os.Stdout, players)
}

func shellReport(db *storage.DB, prefix string) {
	match, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if match == nil {
		cWarn.Fprintf(os.Stderr, "no match found with prefix %q\n", prefix)
		return
	}
	r, err := db.GetParseReport(match.MatchID)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintParseReport(os.Stdout, r)
}

func shellSQL(db *storage.DB, query string) {
	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		cMuted.Println("(no rows)")
		return
	}
	fmt.Println(strings.Join(cols, " | "))
	for _, row := range rows {
		fmt.Println(strings.Join(row, " | "))
	}
	cMuted.Printf("(%d rows)\n", len(rows))
}
