package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/voros/smitelog/internal/parser"
	"github.com/voros/smitelog/internal/report"
	"github.com/voros/smitelog/internal/storage"
)

var (
	entitiesFile string
	keepRaw      bool
	parseQuiet   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <combatlog.log>",
	Short: "Parse a CombatLog file and store the normalized match",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&entitiesFile, "entities", "", "TOML file overriding the entity classification name sets")
	parseCmd.Flags().BoolVar(&keepRaw, "keep-raw", false, "store each event's raw text field in the database")
	parseCmd.Flags().BoolVarP(&parseQuiet, "quiet", "q", false, "suppress tables, print only the parse report line")
}

func runParse(cmd *cobra.Command, args []string) error {
	logPath := args[0]

	opts := parser.Options{}
	if entitiesFile != "" {
		sets, err := parser.LoadEntitySets(entitiesFile)
		if err != nil {
			return err
		}
		opts.Entities = sets
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if !parseQuiet {
		fmt.Fprintf(os.Stdout, "Parsing %s...\n", logPath)
	}
	data, err := parser.ParseFile(logPath, opts)
	if err != nil {
		return fmt.Errorf("parse log: %w", err)
	}

	summary := data.Summary()
	exists, err := db.MatchExists(summary.MatchID)
	if err != nil {
		return fmt.Errorf("check match: %w", err)
	}
	if exists && !parseQuiet {
		fmt.Fprintf(os.Stdout, "Match %s already stored, replacing.\n", summary.MatchID)
	}

	if err := db.SaveMatch(data, keepRaw); err != nil {
		return fmt.Errorf("store match: %w", err)
	}

	if parseQuiet {
		r := data.Report()
		fmt.Fprintf(os.Stdout, "%s: %d events, %d players, %d skipped, %d warnings\n",
			summary.MatchID, summary.EventCount, summary.PlayerCount, r.Skipped(), r.Warned())
		return nil
	}

	report.PrintMatchSummary(os.Stdout, summary)
	report.PrintPlayerTable(os.Stdout, data.Players())
	report.PrintEventBreakdown(os.Stdout, data.EventBreakdown())
	report.PrintParseReport(os.Stdout, data.Report())
	return nil
}
