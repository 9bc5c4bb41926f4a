package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPgxPool 建立 PostgreSQL 連線池並以 DB 介面回傳
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
