package blog_db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestCreateArticle(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	article := &domain.Article{
		ID:       uuid.New(),
		Title:    "Go Generics in Practice",
		Content:  "<p>body</p>",
		AuthorID: uuid.New(),
		Tags:     []string{"go", "generics"},
		IsDraft:  false,
	}

	now := time.Now()
	mock.ExpectQuery("INSERT INTO articles").
		WithArgs(article.ID, article.Title, article.Content, article.AuthorID, article.Tags, article.Thumbnail, article.IsDraft).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err = repo.CreateArticle(context.Background(), article)
	require.NoError(t, err)
	assert.Equal(t, now, article.CreatedAt)
	assert.Equal(t, now, article.UpdatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticle_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	article := &domain.Article{ID: uuid.New(), Title: "t", Content: "c", AuthorID: uuid.New(), IsDraft: true}

	mock.ExpectQuery("INSERT INTO articles").
		WithArgs(article.ID, article.Title, article.Content, article.AuthorID, article.Tags, article.Thumbnail, article.IsDraft).
		WillReturnError(errors.New("connection refused"))

	err = repo.CreateArticle(context.Background(), article)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticle_NilPool(t *testing.T) {
	repo := &BlogDBRepository{}

	err := repo.CreateArticle(context.Background(), &domain.Article{ID: uuid.New()})
	assert.Error(t, err)
}
