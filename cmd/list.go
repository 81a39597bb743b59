package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voros/smitelog/internal/model"
	"github.com/voros/smitelog/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored matches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'smitelog parse <combatlog.log>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-19s  %-9s  %7s  %7s  %s\n",
		"MATCH", "MODE", "START", "DURATION", "PLAYERS", "EVENTS", "SKIPPED")
	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-19s  %-9s  %7s  %7s  %s\n",
		"────────────────────", "──────────", "───────────────────", "─────────", "───────", "───────", "───────")
	for _, m := range matches {
		fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-19s  %-9s  %7d  %7d  %d\n",
			m.MatchID, m.LogMode, listTime(m), listDuration(m), m.PlayerCount, m.EventCount, m.ParseErrors)
	}
	return nil
}

func listTime(m model.MatchSummary) string {
	if m.StartTime.IsZero() {
		return "unknown"
	}
	return m.StartTime.Format("2006-01-02 15:04:05")
}

func listDuration(m model.MatchSummary) string {
	if m.StartTime.IsZero() || m.EndTime.IsZero() {
		return "?"
	}
	return m.EndTime.Sub(m.StartTime).String()
}
