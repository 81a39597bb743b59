package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/voros/smitelog/internal/model"
)

// storedTimeLayout is how instants are stored in the database.
const storedTimeLayout = "2006-01-02 15:04:05"

// parse_reports row kinds.
const (
	reportKindError   = "parse_error"
	reportKindWarning = "schema_warning"
	reportKindActor   = "unknown_actor"
)

// MatchExists returns true if a match with the given id is already stored.
func (db *DB) MatchExists(matchID string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE match_id = ?", matchID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveMatch stores a parsed model. Re-saving the same match id replaces
// the previous rows, so parsing a log twice is idempotent. When keepRaw
// is false the events' raw_text column is left null.
func (db *DB) SaveMatch(d *model.MatchData, keepRaw bool) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	s := d.Summary()
	_, err = tx.Exec(`
		INSERT OR REPLACE INTO matches(
			match_id, log_mode, start_time, end_time,
			player_count, event_count, lines_read, parse_errors, schema_warnings, stored_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.MatchID, s.LogMode, nullTime(s.StartTime), nullTime(s.EndTime),
		s.PlayerCount, s.EventCount, s.LinesRead, s.ParseErrors, s.SchemaWarnings,
		time.Now().UTC().Format(storedTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	// Replace dependent rows wholesale.
	if _, err := tx.Exec("DELETE FROM players WHERE match_id = ?", s.MatchID); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM events WHERE match_id = ?", s.MatchID); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM parse_reports WHERE match_id = ?", s.MatchID); err != nil {
		return fmt.Errorf("clear parse report: %w", err)
	}

	pstmt, err := tx.Prepare(`
		INSERT INTO players(match_id, player_id, player_name, god_id, god_name, role, team_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer pstmt.Close()
	for _, p := range d.Players() {
		_, err = pstmt.Exec(s.MatchID, p.PlayerID, p.PlayerName,
			nullStr(p.GodID), nullStr(p.GodName), nullStr(p.Role), nullIntPtr(p.TeamID))
		if err != nil {
			return fmt.Errorf("insert player %q: %w", p.PlayerName, err)
		}
	}

	estmt, err := tx.Prepare(`
		INSERT INTO events(
			match_id, event_id, line, event_type, event_subtype,
			event_time, raw_time,
			source_name, source_player_id, source_class,
			target_name, target_player_id, target_class,
			location_x, location_y, item_id, item_name,
			value1, value2, raw_text
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer estmt.Close()
	for _, e := range d.Events() {
		rawText := any(nil)
		if keepRaw {
			rawText = e.RawText
		}
		_, err = estmt.Exec(
			s.MatchID, e.EventID, e.Line, string(e.Type), string(e.Subtype),
			nullTime(e.Time), nullStr(e.RawTime),
			nullStr(e.SourceName), nullIntPtr(e.SourcePlayerID), nullStr(e.SourceClass.String()),
			nullStr(e.TargetName), nullIntPtr(e.TargetPlayerID), nullStr(e.TargetClass.String()),
			nullFloatPtr(e.LocationX), nullFloatPtr(e.LocationY),
			nullStr(e.ItemID), nullStr(e.ItemName),
			nullFloatPtr(e.Value1), nullFloatPtr(e.Value2), rawText,
		)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", e.EventID, err)
		}
	}

	rstmt, err := tx.Prepare(`
		INSERT INTO parse_reports(match_id, seq, kind, line, field, excerpt, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer rstmt.Close()
	r := d.Report()
	seq := 0
	for _, e := range r.ParseErrors {
		seq++
		_, err = rstmt.Exec(s.MatchID, seq, reportKindError, e.Line, nil, nullStr(e.Excerpt), nullStr(e.Reason))
		if err != nil {
			return fmt.Errorf("insert parse error: %w", err)
		}
	}
	for _, w := range r.SchemaWarnings {
		seq++
		_, err = rstmt.Exec(s.MatchID, seq, reportKindWarning, w.Line, nullStr(w.Field), nil, nullStr(w.Reason))
		if err != nil {
			return fmt.Errorf("insert schema warning: %w", err)
		}
	}
	for _, name := range r.UnknownActors {
		seq++
		_, err = rstmt.Exec(s.MatchID, seq, reportKindActor, nil, nil, nil, name)
		if err != nil {
			return fmt.Errorf("insert unknown actor: %w", err)
		}
	}

	return tx.Commit()
}

// ListMatches returns all stored matches, newest first by start time.
func (db *DB) ListMatches() ([]model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, log_mode, start_time, end_time,
		       player_count, event_count, lines_read, parse_errors, schema_warnings
		FROM matches ORDER BY start_time DESC, match_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetMatchByPrefix returns the stored match whose id starts with prefix,
// or nil when none matches.
func (db *DB) GetMatchByPrefix(prefix string) (*model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, log_mode, start_time, end_time,
		       player_count, event_count, lines_read, parse_errors, schema_warnings
		FROM matches WHERE match_id LIKE ? || '%' LIMIT 1`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	s, err := scanSummary(rows)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetPlayers returns the player registry of a stored match, ordered by id.
func (db *DB) GetPlayers(matchID string) ([]model.Player, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, player_name, god_id, god_name, role, team_id
		FROM players WHERE match_id = ? ORDER BY player_id`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Player
	for rows.Next() {
		var p model.Player
		var godID, godName, role sql.NullString
		var team sql.NullInt64
		if err := rows.Scan(&p.PlayerID, &p.PlayerName, &godID, &godName, &role, &team); err != nil {
			return nil, err
		}
		p.GodID = godID.String
		p.GodName = godName.String
		p.Role = role.String
		if team.Valid {
			t := int(team.Int64)
			p.TeamID = &t
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetEventBreakdown counts a stored match's events per (type, subtype).
func (db *DB) GetEventBreakdown(matchID string) ([]model.EventTypeCount, error) {
	rows, err := db.conn.Query(`
		SELECT event_type, event_subtype, COUNT(1)
		FROM events WHERE match_id = ?
		GROUP BY event_type, event_subtype
		ORDER BY COUNT(1) DESC, event_type, event_subtype`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EventTypeCount
	for rows.Next() {
		var c model.EventTypeCount
		var t, s string
		if err := rows.Scan(&t, &s, &c.Count); err != nil {
			return nil, err
		}
		c.Type = model.EventType(t)
		c.Subtype = model.EventSubtype(s)
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetParseReport reconstructs a stored match's parse report, detail
// entries included.
func (db *DB) GetParseReport(matchID string) (model.ParseReport, error) {
	var r model.ParseReport
	err := db.conn.QueryRow(
		"SELECT lines_read, event_count FROM matches WHERE match_id = ?", matchID).
		Scan(&r.LinesRead, &r.RecordsParsed)
	if err != nil {
		return r, fmt.Errorf("query match: %w", err)
	}

	rows, err := db.conn.Query(`
		SELECT kind, line, field, excerpt, detail
		FROM parse_reports WHERE match_id = ? ORDER BY seq`, matchID)
	if err != nil {
		return r, err
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var line sql.NullInt64
		var field, excerpt, detail sql.NullString
		if err := rows.Scan(&kind, &line, &field, &excerpt, &detail); err != nil {
			return r, err
		}
		switch kind {
		case reportKindError:
			r.ParseErrors = append(r.ParseErrors, model.ParseError{
				Line: int(line.Int64), Excerpt: excerpt.String, Reason: detail.String})
		case reportKindWarning:
			r.SchemaWarnings = append(r.SchemaWarnings, model.SchemaWarning{
				Line: int(line.Int64), Field: field.String, Reason: detail.String})
		case reportKindActor:
			r.UnknownActors = append(r.UnknownActors, detail.String)
		}
	}
	return r, rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names plus all rows
// rendered as strings. NULL renders as an empty string.
func (db *DB) QueryRaw(query string, args ...any) (cols []string, out [][]string, err error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err = rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch x := v.(type) {
			case nil:
				row[i] = ""
			case []byte:
				row[i] = string(x)
			default:
				row[i] = fmt.Sprintf("%v", x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func scanSummary(rows *sql.Rows) (model.MatchSummary, error) {
	var s model.MatchSummary
	var start, end sql.NullString
	err := rows.Scan(&s.MatchID, &s.LogMode, &start, &end,
		&s.PlayerCount, &s.EventCount, &s.LinesRead, &s.ParseErrors, &s.SchemaWarnings)
	if err != nil {
		return s, err
	}
	s.StartTime = parseStoredTime(start)
	s.EndTime = parseStoredTime(end)
	return s, nil
}

func parseStoredTime(v sql.NullString) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	t, err := time.Parse(storedTimeLayout, v.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(storedTimeLayout)
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIntPtr(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullFloatPtr(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
