package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-backend/di"
	"blog-backend/domain"
	"blog-backend/mocks"
	"blog-backend/usecase/add_comment_usecase"
	"blog-backend/usecase/list_comments_usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandleListComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockComments := mocks.NewMockCommentRepositoryPort(ctrl)
	container := &di.ApplicationComponents{
		ListCommentsUsecase: list_comments_usecase.NewListCommentsUsecase(mockComments),
	}

	articleID := uuid.New()
	mockComments.EXPECT().
		ListComments(gomock.Any(), articleID).
		Return([]*domain.Comment{{ID: uuid.New(), ArticleID: articleID, Message: "nice write-up"}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("articleId")
	c.SetParamValues(articleID.String())

	err := handleListComments(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var comments []domain.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "nice write-up", comments[0].Message)
}

func TestHandleAddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArticles := mocks.NewMockArticleRepositoryPort(ctrl)
	mockComments := mocks.NewMockCommentRepositoryPort(ctrl)
	container := &di.ApplicationComponents{
		AddCommentUsecase: add_comment_usecase.NewAddCommentUsecase(mockArticles, mockComments),
	}

	articleID := uuid.New()
	user := &domain.UserContext{UserID: uuid.New(), Username: "alice"}

	mockArticles.EXPECT().ArticleExists(gomock.Any(), articleID).Return(true, nil)
	mockComments.EXPECT().AddComment(gomock.Any(), gomock.Any()).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"great article"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user)
	c.SetParamNames("articleId")
	c.SetParamValues(articleID.String())

	err := handleAddComment(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var comment domain.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))
	assert.Equal(t, "great article", comment.Message)
	assert.Equal(t, "alice", comment.Username)
}

func TestHandleAddComment_ArticleMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArticles := mocks.NewMockArticleRepositoryPort(ctrl)
	mockComments := mocks.NewMockCommentRepositoryPort(ctrl)
	container := &di.ApplicationComponents{
		AddCommentUsecase: add_comment_usecase.NewAddCommentUsecase(mockArticles, mockComments),
	}

	articleID := uuid.New()
	mockArticles.EXPECT().ArticleExists(gomock.Any(), articleID).Return(false, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"orphaned"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.UserContext{UserID: uuid.New(), Username: "bob"})
	c.SetParamNames("articleId")
	c.SetParamValues(articleID.String())

	err := handleAddComment(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAddComment_EmptyMessageRejected(t *testing.T) {
	container := &di.ApplicationComponents{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, &domain.UserContext{UserID: uuid.New(), Username: "bob"})
	c.SetParamNames("articleId")
	c.SetParamValues(uuid.New().String())

	err := handleAddComment(container)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
