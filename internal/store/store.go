package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail email 已被註冊（唯一索引衝突）
	ErrDuplicateEmail = errors.New("email already registered")
)

// isUniqueViolation 判斷是否為 PostgreSQL 唯一索引衝突 (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
