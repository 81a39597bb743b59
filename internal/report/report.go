package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/voros/smitelog/internal/model"
)

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, s model.MatchSummary) {
	fmt.Fprintf(w, "\nMatch: %s  |  Mode: %s  |  Start: %s  |  Duration: %s  |  Players: %d  |  Events: %d\n\n",
		s.MatchID, s.LogMode, formatTime(s.StartTime), formatDuration(s), s.PlayerCount, s.EventCount)
}

// PrintPlayerTable prints the resolved player registry.
func PrintPlayerTable(w io.Writer, players []model.Player) {
	if len(players) == 0 {
		fmt.Fprintln(w, "No players resolved from this log.")
		return
	}

	table := newTable(w)
	table.Header("ID", "NAME", "TEAM", "ROLE", "GOD", "GOD_ID")
	for _, p := range players {
		team := "—"
		if p.TeamID != nil {
			team = strconv.Itoa(*p.TeamID)
		}
		table.Append(
			strconv.Itoa(p.PlayerID),
			p.PlayerName,
			team,
			orDash(p.Role),
			orDash(p.GodName),
			orDash(p.GodID),
		)
	}
	table.Render()
}

// PrintEventBreakdown prints event counts per (type, subtype).
func PrintEventBreakdown(w io.Writer, counts []model.EventTypeCount) {
	if len(counts) == 0 {
		return
	}
	table := newTable(w)
	table.Header("EVENT_TYPE", "SUBTYPE", "COUNT")
	for _, c := range counts {
		sub := string(c.Subtype)
		if sub == "" {
			sub = "—"
		}
		table.Append(string(c.Type), sub, strconv.Itoa(c.Count))
	}
	table.Render()
}

// PrintParseReport prints skip/warning counts and, when present, the
// first few problems in detail.
func PrintParseReport(w io.Writer, r model.ParseReport) {
	fmt.Fprintf(w, "\nLines read: %d  |  Records parsed: %d  |  Skipped: %d  |  Warnings: %d\n",
		r.LinesRead, r.RecordsParsed, r.Skipped(), r.Warned())

	const maxShown = 5
	for i, e := range r.ParseErrors {
		if i == maxShown {
			fmt.Fprintf(w, "  ... and %d more parse errors\n", len(r.ParseErrors)-maxShown)
			break
		}
		fmt.Fprintf(w, "  line %d: %s (%s)\n", e.Line, e.Reason, e.Excerpt)
	}
	for i, sw := range r.SchemaWarnings {
		if i == maxShown {
			fmt.Fprintf(w, "  ... and %d more warnings\n", len(r.SchemaWarnings)-maxShown)
			break
		}
		fmt.Fprintf(w, "  line %d: field %s: %s\n", sw.Line, sw.Field, sw.Reason)
	}
	if n := len(r.UnknownActors); n > 0 {
		fmt.Fprintf(w, "Unclassified actors (%d): ", n)
		for i, name := range r.UnknownActors {
			if i == maxShown {
				fmt.Fprintf(w, "... (+%d)", n-maxShown)
				break
			}
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, name)
		}
		fmt.Fprintln(w)
	}
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatDuration(s model.MatchSummary) string {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return "unknown"
	}
	return s.EndTime.Sub(s.StartTime).Round(time.Second).String()
}
