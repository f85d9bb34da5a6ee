package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"blog-backend/di"
	"blog-backend/domain"
	"blog-backend/mocks"
	"blog-backend/usecase/auto_save_draft_usecase"
	"blog-backend/usecase/delete_article_usecase"
	"blog-backend/usecase/fetch_article_usecase"
	"blog-backend/usecase/list_articles_usecase"
	"blog-backend/usecase/toggle_like_usecase"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, user *domain.UserContext) echo.Context {
	if user != nil {
		req = req.WithContext(domain.SetUserContext(req.Context(), user))
	}
	return e.NewContext(req, rec)
}

func TestHandleListArticles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	container := &di.ApplicationComponents{
		ListArticlesUsecase: list_articles_usecase.NewListArticlesUsecase(mockRepo),
	}

	mockRepo.EXPECT().
		ListPublishedArticles(gomock.Any(), domain.ArticleFilter{SearchText: "generics", Tag: "go"}).
		Return([]*domain.Article{{ID: uuid.New(), Title: "Go Generics"}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/articles?search=generics&tag=go", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handleListArticles(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var articles []domain.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
	require.Len(t, articles, 1)
	assert.Equal(t, "Go Generics", articles[0].Title)
}

func TestHandleGetArticle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	container := &di.ApplicationComponents{
		FetchArticleUsecase: fetch_article_usecase.NewFetchArticleUsecase(mockRepo),
	}

	id := uuid.New()
	mockRepo.EXPECT().GetArticleByID(gomock.Any(), id).Return(nil, domain.ErrArticleNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handleGetArticle(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetArticle_InvalidID(t *testing.T) {
	container := &di.ApplicationComponents{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handleGetArticle(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAutoSaveDraft_FailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	container := &di.ApplicationComponents{
		AutoSaveDraftUsecase: auto_save_draft_usecase.NewAutoSaveDraftUsecase(mockRepo),
	}

	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	user := &domain.UserContext{UserID: uuid.New(), Username: "alice"}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"keystrokes"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	err := handleAutoSaveDraft(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AutoSaveDraftFailure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Saved)
}

func TestHandleAutoSaveDraft_CreatesDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	container := &di.ApplicationComponents{
		AutoSaveDraftUsecase: auto_save_draft_usecase.NewAutoSaveDraftUsecase(mockRepo),
	}

	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			assert.Equal(t, domain.UntitledDraftTitle, article.Title)
			return nil
		})

	user := &domain.UserContext{UserID: uuid.New(), Username: "alice"}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"hello","tags":"go, draft"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)

	err := handleAutoSaveDraft(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var article domain.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &article))
	assert.True(t, article.IsDraft)
	assert.Equal(t, []string{"go", "draft"}, article.Tags)
}

func TestHandleDeleteArticle_RespondsWithID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	mockBlob := mocks.NewMockBlobStorePort(ctrl)
	container := &di.ApplicationComponents{
		DeleteArticleUsecase: delete_article_usecase.NewDeleteArticleUsecase(mockRepo, mockBlob),
	}

	user := &domain.UserContext{UserID: uuid.New()}
	id := uuid.New()

	mockRepo.EXPECT().GetArticleByID(gomock.Any(), id).Return(&domain.Article{ID: id, AuthorID: user.UserID}, nil)
	mockRepo.EXPECT().DeleteArticle(gomock.Any(), id).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handleDeleteArticle(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp DeleteArticleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id.String(), resp.ID)
}

func TestHandleDeleteArticle_NonAuthorGets401(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	mockBlob := mocks.NewMockBlobStorePort(ctrl)
	container := &di.ApplicationComponents{
		DeleteArticleUsecase: delete_article_usecase.NewDeleteArticleUsecase(mockRepo, mockBlob),
	}

	id := uuid.New()
	mockRepo.EXPECT().GetArticleByID(gomock.Any(), id).Return(&domain.Article{ID: id, AuthorID: uuid.New()}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.UserContext{UserID: uuid.New()})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handleDeleteArticle(container)(c)
	require.NoError(t, err)
	// Ownership failures are 401, distinct from the 404 of unknown ids.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleLikeArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	container := &di.ApplicationComponents{
		ToggleLikeUsecase: toggle_like_usecase.NewToggleLikeUsecase(mockRepo),
	}

	user := &domain.UserContext{UserID: uuid.New()}
	id := uuid.New()

	mockRepo.EXPECT().
		ToggleLike(gomock.Any(), id, user.UserID).
		Return([]uuid.UUID{user.UserID}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handleLikeArticle(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var likedBy []uuid.UUID
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &likedBy))
	assert.Equal(t, []uuid.UUID{user.UserID}, likedBy)
}
