package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voros/smitelog/internal/report"
	"github.com/voros/smitelog/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <match-id-prefix>",
	Short: "Show a stored match by id prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	match, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query match: %w", err)
	}
	if match == nil {
		fmt.Fprintf(os.Stderr, "No match found with id prefix %q\n", prefix)
		return nil
	}

	players, err := db.GetPlayers(match.MatchID)
	if err != nil {
		return fmt.Errorf("get players: %w", err)
	}
	breakdown, err := db.GetEventBreakdown(match.MatchID)
	if err != nil {
		return fmt.Errorf("get event breakdown: %w", err)
	}

	report.PrintMatchSummary(os.Stdout, *match)
	report.PrintPlayerTable(os.Stdout, players)
	report.PrintEventBreakdown(os.Stdout, breakdown)
	return nil
}
