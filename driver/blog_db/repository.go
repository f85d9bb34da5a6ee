package blog_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool used by the drivers. pgxmock
// satisfies it in tests.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// BlogDBRepository bundles every article/comment query against PostgreSQL.
type BlogDBRepository struct {
	pool DBPool
}

func NewBlogDBRepository(pool DBPool) *BlogDBRepository {
	return &BlogDBRepository{pool: pool}
}
