package blog_db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/domain"
)

func TestListCommentsByArticle(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	articleID := uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "article_id", "user_id", "username", "message", "created_at"}).
		AddRow(uuid.New(), articleID, uuid.New(), "bob", "newest", now).
		AddRow(uuid.New(), articleID, uuid.New(), "alice", "older", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT c.id").
		WithArgs(articleID).
		WillReturnRows(rows)

	comments, err := repo.ListCommentsByArticle(context.Background(), articleID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newest", comments[0].Message)
	assert.Equal(t, "bob", comments[0].Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	comment := &domain.Comment{
		ID:        uuid.New(),
		ArticleID: uuid.New(),
		UserID:    uuid.New(),
		Message:   "nice write-up",
	}

	now := time.Now()
	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(comment.ID, comment.ArticleID, comment.UserID, comment.Message).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(comment.UserID).
		WillReturnRows(pgxmock.NewRows([]string{"username"}).AddRow("carol"))

	err = repo.CreateComment(context.Background(), comment)
	require.NoError(t, err)
	assert.Equal(t, now, comment.CreatedAt)
	assert.Equal(t, "carol", comment.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	id := uuid.New()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ArticleExists(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}
