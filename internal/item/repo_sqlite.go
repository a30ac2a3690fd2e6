package item

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type SQLiteRepo struct{ db *sqlx.DB }

func NewSQLiteRepo(db *sqlx.DB) *SQLiteRepo { return &SQLiteRepo{db: db} }

func (r *SQLiteRepo) List(ctx context.Context) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out := []Item{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, name, description, price, created_at
		FROM items ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it Item
	err := r.db.GetContext(ctx, &it, `
		SELECT id, name, description, price, created_at
		FROM items WHERE id = ?
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *SQLiteRepo) Create(ctx context.Context, name string, description *string, price float64) (*Item, error) {
	if err := validate(name, price); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO items (name, description, price, created_at)
		VALUES (?, ?, ?, ?)
	`, name, description, price, nowRFC3339())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteRepo) Update(ctx context.Context, id int64, name string, description *string, price float64) (*Item, error) {
	if err := validate(name, price); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// created_at is immutable; only the mutable columns are touched.
	res, err := r.db.ExecContext(ctx, `
		UPDATE items SET name = ?, description = ?, price = ?
		WHERE id = ?
	`, name, description, price, id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLiteRepo) SelectN(ctx context.Context, n int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price FROM items LIMIT ?
	`, n)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	fetched := 0
	for rows.Next() {
		fetched++
	}
	return fetched, rows.Err()
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}
