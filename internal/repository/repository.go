package repository

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=repository.go -destination=mock/mock.go

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type Repository struct {
	*StoreR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		StoreR: NewStoreRepository(db),
	}
}
