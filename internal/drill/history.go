package drill

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	challenge_id TEXT    NOT NULL,
	verb         TEXT    NOT NULL,
	form         TEXT    NOT NULL,
	given        TEXT    NOT NULL,
	expected     TEXT    NOT NULL,
	correct      INTEGER NOT NULL,
	answered_at  TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS attempts_form ON attempts (form);
`

// Attempt is one recorded answer.
type Attempt struct {
	ChallengeID string
	Verb        string
	Form        string
	Given       string
	Expected    string
	Correct     bool
	AnsweredAt  time.Time
}

// Tally counts attempts and correct answers.
type Tally struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// Stats summarises the history overall and per form name.
type Stats struct {
	Tally
	ByForm map[string]Tally `json:"by_form"`
}

// History stores attempts in SQLite.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if needed) the database at path. An empty
// path keeps the history in memory for the life of the process.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history %q: %w", dsn, err)
	}
	// One connection: an in-memory database exists per connection, and
	// SQLite serialises writers anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &History{db: db}, nil
}

// Close releases the database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores the outcome of a challenge.
func (h *History) Record(ctx context.Context, r Result, at time.Time) error {
	correct := 0
	if r.Correct {
		correct = 1
	}
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO attempts (challenge_id, verb, form, given, expected, correct, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Challenge.ID.String(), r.Challenge.Verb.Name(), r.Challenge.Form.Name(),
		r.Given, r.Challenge.Answer, correct, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record attempt %s: %w", r.Challenge.ID, err)
	}
	return nil
}

// Stats counts attempts overall and per form.
func (h *History) Stats(ctx context.Context) (Stats, error) {
	st := Stats{ByForm: make(map[string]Tally)}
	rows, err := h.db.QueryContext(ctx,
		`SELECT form, COUNT(*), COALESCE(SUM(correct), 0) FROM attempts GROUP BY form`)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			form string
			t    Tally
		)
		if err := rows.Scan(&form, &t.Total, &t.Correct); err != nil {
			return Stats{}, fmt.Errorf("scan stats: %w", err)
		}
		st.ByForm[form] = t
		st.Total += t.Total
		st.Correct += t.Correct
	}
	return st, rows.Err()
}

// Recent returns up to limit attempts, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT challenge_id, verb, form, given, expected, correct, answered_at
		 FROM attempts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a       Attempt
			correct int
			at      string
		)
		if err := rows.Scan(&a.ChallengeID, &a.Verb, &a.Form, &a.Given, &a.Expected, &correct, &at); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Correct = correct != 0
		if a.AnsweredAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("attempt %s: bad timestamp %q: %w", a.ChallengeID, at, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
