package fetch_article_usecase

import (
	"context"
	"errors"
	"os"
	"testing"

	"blog-backend/domain"
	"blog-backend/mocks"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestFetchArticle_BumpsViewCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	usecase := NewFetchArticleUsecase(mockRepo)

	id := uuid.New()
	stored := &domain.Article{ID: id, Title: "t", ViewCount: 9}

	mockRepo.EXPECT().GetArticleByID(gomock.Any(), id).Return(stored, nil)
	mockRepo.EXPECT().IncrementViewCount(gomock.Any(), id).Return(int64(10), nil)

	article, err := usecase.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(10), article.ViewCount)
}

func TestFetchArticle_BumpFailureStillServes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	usecase := NewFetchArticleUsecase(mockRepo)

	id := uuid.New()
	stored := &domain.Article{ID: id, Title: "t", ViewCount: 9}

	mockRepo.EXPECT().GetArticleByID(gomock.Any(), id).Return(stored, nil)
	mockRepo.EXPECT().IncrementViewCount(gomock.Any(), id).Return(int64(0), errors.New("deadlock detected"))

	article, err := usecase.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(9), article.ViewCount)
}

func TestFetchArticle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	usecase := NewFetchArticleUsecase(mockRepo)

	id := uuid.New()
	mockRepo.EXPECT().GetArticleByID(gomock.Any(), id).Return(nil, domain.ErrArticleNotFound)

	article, err := usecase.Execute(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	assert.Nil(t, article)
}
