// Package item provides the repository interface and the SQLite and
// PostgreSQL implementations for managing items.
package item

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("item not found")
	ErrInvalid  = errors.New("invalid item")
)

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, name string, description *string, price float64) (*Item, error)
	Update(ctx context.Context, id int64, name string, description *string, price float64) (*Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SelectN(ctx context.Context, n int) (int, error)
	Ping(ctx context.Context) error
}

// validate enforces the persistence invariant: non-empty name,
// non-negative price.
func validate(name string, price float64) error {
	if name == "" || price < 0 {
		return ErrInvalid
	}
	return nil
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
