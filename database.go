package main

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite stats database. It stores telemetry only — world
// state never touches disk.
type DB struct {
	conn *sql.DB
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS stats_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_stats_events_type ON stats_events(event_type);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		log.Printf("DB migration error: %v", err)
	}
	return err
}

// InsertEvents writes a batch of events in one transaction
func (db *DB) InsertEvents(events []StatsEvent) {
	if len(events) == 0 {
		return
	}
	tx, err := db.conn.Begin()
	if err != nil {
		log.Printf("stats: begin tx error: %v", err)
		return
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO stats_events (event_type, created_at) VALUES (?, ?)`)
	if err != nil {
		log.Printf("stats: prepare error: %v", err)
		return
	}
	defer stmt.Close()

	for _, evt := range events {
		if _, err := stmt.Exec(evt.Type, evt.Timestamp.Format(time.RFC3339)); err != nil {
			log.Printf("stats: insert error: %v", err)
		}
	}
	tx.Commit()
}

// EventCount returns the number of recorded events of one type
func (db *DB) EventCount(evtType string) (int, error) {
	var count int
	err := db.conn.QueryRow(
		`SELECT COUNT(*) FROM stats_events WHERE event_type = ?`, evtType,
	).Scan(&count)
	return count, err
}
