package save

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"petden/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot       INTEGER PRIMARY KEY CHECK (slot = 1),
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteRepo stores the save in a single-row sqlite table.
type SQLiteRepo struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the save database at path.
func OpenSQLite(path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open save db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init save schema: %w", err)
	}
	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Load() (game.State, bool, error) {
	var payload string
	err := r.db.QueryRow(`SELECT payload FROM saves WHERE slot = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return game.State{}, false, nil
	}
	if err != nil {
		return game.State{}, false, fmt.Errorf("load save: %w", err)
	}
	var s game.State
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return game.State{}, false, fmt.Errorf("decode save: %w", err)
	}
	return s, true, nil
}

func (r *SQLiteRepo) Save(s game.State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	_, err = r.db.Exec(`
		INSERT INTO saves (slot, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(b), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}
