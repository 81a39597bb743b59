package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voros/smitelog/internal/storage"
)

var (
	exportView string
	exportOut  string
)

// exportTables maps --view values to the table or SQL view exported.
var exportTables = map[string]string{
	"events":  "events",
	"combat":  "combat_events",
	"economy": "economy_events",
	"item":    "item_events",
	"player":  "player_events",
}

var exportCmd = &cobra.Command{
	Use:   "export <match-id-prefix>",
	Short: "Export a stored match's events as CSV",
	Long: `Write the event table, or one of the specialized views, as CSV.

Views:
  events   the full unified event table (default)
  combat   CombatMsg events with damage/mitigation/critical columns
  economy  RewardMsg events with reward type and amount
  item     itemmsg purchase events
  player   playermsg role/god selection events`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportView, "view", "events", "which view to export: events|combat|economy|item|player")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	table, ok := exportTables[exportView]
	if !ok {
		return fmt.Errorf("unknown view %q (want events, combat, economy, item or player)", exportView)
	}

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
		return fmt.Errorf("no match found with id prefix %q", prefix)
	}

	// The view/table name comes from the fixed map above, never from user input.
	query := fmt.Sprintf("SELECT * FROM %s WHERE match_id = ? ORDER BY event_id", table)
	cols, rows, err := db.QueryRaw(query, match.MatchID)
	if err != nil {
		return fmt.Errorf("export query: %w", err)
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if exportOut != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(rows), exportOut)
	}
	return nil
}
