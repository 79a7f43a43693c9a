// Package persistence provides SQLite-based game state storage.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/pet"
	"github.com/talgya/mini-pet/internal/world"
)

// DB wraps a SQLite connection for game state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS game_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		pet_json TEXT,
		player_json TEXT NOT NULL,
		world_json TEXT NOT NULL,
		settings_json TEXT NOT NULL,
		tick_count INTEGER NOT NULL,
		last_save_time TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes the full game state (single-row replace). Called from the
// autosave path and after catch-up; a failure is logged and returned but
// never rolls back the in-memory tick that triggered it.
func (db *DB) Save(gs *world.GameState) error {
	var petJSON []byte
	if gs.Pet != nil {
		var err error
		petJSON, err = json.Marshal(gs.Pet)
		if err != nil {
			return fmt.Errorf("marshal pet: %w", err)
		}
	}
	playerJSON, err := json.Marshal(gs.Player)
	if err != nil {
		return fmt.Errorf("marshal player: %w", err)
	}
	worldJSON, err := json.Marshal(gs.World)
	if err != nil {
		return fmt.Errorf("marshal world: %w", err)
	}
	settingsJSON, err := json.Marshal(gs.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	_, err = db.conn.Exec(`INSERT OR REPLACE INTO game_state
		(id, pet_json, player_json, world_json, settings_json, tick_count, last_save_time)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		nullableString(petJSON), string(playerJSON), string(worldJSON),
		string(settingsJSON), gs.TickCount,
		gs.LastSaveTime.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save game state: %w", err)
	}

	slog.Debug("game state saved", "tick", gs.TickCount)
	return nil
}

// HasGameState reports whether a saved state exists.
func (db *DB) HasGameState() bool {
	var count int
	if err := db.conn.Get(&count, "SELECT COUNT(*) FROM game_state"); err != nil {
		return false
	}
	return count > 0
}

// Load restores the game state. Returns (nil, nil) when nothing has been
// saved yet.
func (db *DB) Load() (*world.GameState, error) {
	var row struct {
		PetJSON      sql.NullString `db:"pet_json"`
		PlayerJSON   string         `db:"player_json"`
		WorldJSON    string         `db:"world_json"`
		SettingsJSON string         `db:"settings_json"`
		TickCount    uint64         `db:"tick_count"`
		LastSaveTime string         `db:"last_save_time"`
	}
	err := db.conn.Get(&row, `SELECT pet_json, player_json, world_json,
		settings_json, tick_count, last_save_time FROM game_state WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load game state: %w", err)
	}

	gs := &world.GameState{TickCount: row.TickCount}
	if row.PetJSON.Valid && row.PetJSON.String != "" {
		gs.Pet = &pet.Pet{}
		if err := json.Unmarshal([]byte(row.PetJSON.String), gs.Pet); err != nil {
			return nil, fmt.Errorf("unmarshal pet: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(row.PlayerJSON), &gs.Player); err != nil {
		return nil, fmt.Errorf("unmarshal player: %w", err)
	}
	if err := json.Unmarshal([]byte(row.WorldJSON), &gs.World); err != nil {
		return nil, fmt.Errorf("unmarshal world: %w", err)
	}
	if err := json.Unmarshal([]byte(row.SettingsJSON), &gs.Settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if t, err := time.Parse(time.RFC3339Nano, row.LastSaveTime); err == nil {
		gs.LastSaveTime = t
	}

	// Older saves can predate these maps.
	if gs.Player.Inventory == nil {
		gs.Player.Inventory = map[string]int{}
	}
	if gs.Player.Skills == nil {
		gs.Player.Skills = map[string]engine.Skill{}
	}
	if gs.Player.CompletedQuests == nil {
		gs.Player.CompletedQuests = map[string]bool{}
	}

	return gs, nil
}

// SaveMeta stores a key-value pair in metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}

func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
