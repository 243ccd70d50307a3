package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ErrStorage markiert alle Fehler der Persistenzschicht.
var ErrStorage = errors.New("storage error")

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	external_id TEXT NOT NULL UNIQUE,
	content TEXT NOT NULL,
	due TEXT,
	completed INTEGER NOT NULL,
	source TEXT NOT NULL
)`

// Store besitzt die persistierte Task-Tabelle. Der Handle wird explizit
// geöffnet und vom Aufrufer wieder geschlossen; es gibt keinen globalen
// Zustand. Nicht für konkurrierende Schreiber ausgelegt.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorage, path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ensure schema: %v", ErrStorage, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Merge führt den Remote-Stand per Upsert in den Store.
// Pro Record: insert wenn external_id unbekannt, sonst Update von
// content, due und completed; id und source bleiben erhalten.
// Mehrfach aufrufbar ohne Zustandsänderung (idempotent); bei Duplikaten
// innerhalb eines Batches gewinnt der zuletzt angewendete Record.
func (s *Store) Merge(ctx context.Context, tasks []Task) error {
	for _, t := range tasks {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO tasks (external_id, content, due, completed, source)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(external_id)
			DO UPDATE SET
				content = excluded.content,
				due = excluded.due,
				completed = excluded.completed`,
			t.ExternalID, t.Content, nullString(t.Due), boolInt(t.Completed), t.Source,
		)
		if err != nil {
			return fmt.Errorf("%w: merge task %s: %v", ErrStorage, t.ExternalID, err)
		}
	}
	return nil
}

// ListOpen liefert alle nicht erledigten Tasks: Records mit
// Fälligkeitsdatum zuerst (aufsteigend), danach Records ohne Datum.
func (s *Store) ListOpen(ctx context.Context) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, external_id, content, due, completed, source
		FROM tasks WHERE completed = 0
		ORDER BY due IS NULL, due`)
	if err != nil {
		return nil, fmt.Errorf("%w: list open tasks: %v", ErrStorage, err)
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: scan task: %v", ErrStorage, scanErr)
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list open tasks: %v", ErrStorage, err)
	}
	return out, nil
}

// Count liefert die Gesamtzahl aller gespeicherten Records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count tasks: %v", ErrStorage, err)
	}
	return n, nil
}

func scanTask(rows *sql.Rows) (Task, error) {
	var (
		t         Task
		due       sql.NullString
		completed int
	)
	if err := rows.Scan(&t.ID, &t.ExternalID, &t.Content, &due, &completed, &t.Source); err != nil {
		return Task{}, err
	}
	if due.Valid {
		t.Due = &due.String
	}
	t.Completed = completed != 0
	return t, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
