// Package db opens the backing store, applies the schema and seeds the
// items table on first run.
package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/benchlab/bench-api/internal/item"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    price REAL NOT NULL,
    created_at TEXT NOT NULL
);
`

const pgSchema = `
CREATE TABLE IF NOT EXISTS items (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    price DOUBLE PRECISION NOT NULL,
    created_at TEXT NOT NULL
);
`

var sampleItems = []struct {
	Name        string
	Description string
	Price       float64
}{
	{"Laptop", "High-performance laptop", 999.99},
	{"Mouse", "Wireless mouse", 29.99},
	{"Keyboard", "Mechanical keyboard", 79.99},
}

// ConnectSQLite opens (or creates) the embedded database, applies the
// schema and seeds the sample rows when the table is empty. Seeding is
// keyed on the row count, so repeated startups never duplicate rows.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}

	var count int64
	if err := db.Get(&count, `SELECT COUNT(*) FROM items`); err != nil {
		db.Close()
		return nil, err
	}
	if count == 0 {
		if err := seed(item.NewSQLiteRepo(db)); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// ConnectPostgres is the server-database counterpart of ConnectSQLite
// with identical schema and seeding semantics.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		pool.Close()
		return nil, err
	}
	if count == 0 {
		if err := seed(item.NewPGRepo(pool)); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}

func seed(repo item.Repository) error {
	log.Println("[db] seeding sample items")
	for _, s := range sampleItems {
		desc := s.Description
		if _, err := repo.Create(context.Background(), s.Name, &desc, s.Price); err != nil {
			return err
		}
	}
	return nil
}
