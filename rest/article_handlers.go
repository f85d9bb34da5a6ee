package rest

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"blog-backend/di"
	"blog-backend/domain"
	"blog-backend/middleware"
	"blog-backend/usecase/publish_article_usecase"
	"blog-backend/usecase/update_article_usecase"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents, auth *middleware.AuthMiddleware) {
	v1.GET("/articles", handleListArticles(container))
	v1.GET("/articles/:id", handleGetArticle(container))
	v1.GET("/articles/:id/pdf", handleGetArticlePDF(container))

	v1.POST("/articles", handlePublishArticle(container), auth.RequireAuth())
	v1.PUT("/articles/:id", handleUpdateArticle(container), auth.RequireAuth())
	v1.DELETE("/articles/:id", handleDeleteArticle(container), auth.RequireAuth())
	v1.POST("/articles/draft", handleAutoSaveDraft(container), auth.RequireAuth())
	v1.PUT("/articles/:id/like", handleLikeArticle(container), auth.RequireAuth())
}

func handleListArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := domain.ArticleFilter{
			SearchText: strings.TrimSpace(c.QueryParam("search")),
			Tag:        strings.TrimSpace(c.QueryParam("tag")),
		}

		articles, err := container.ListArticlesUsecase.Execute(c.Request().Context(), filter)
		if err != nil {
			return handleError(c, err, "list_articles")
		}

		return c.JSON(http.StatusOK, articles)
	}
}

func handleGetArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "article id must be a uuid", "id", c.Param("id"))
		}

		article, err := container.FetchArticleUsecase.Execute(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "get_article")
		}

		return c.JSON(http.StatusOK, article)
	}
}

func handlePublishArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := middleware.GetUserContext(c)
		if err != nil {
			return handleError(c, err, "publish_article")
		}

		input := publish_article_usecase.PublishArticleInput{
			Title:   strings.TrimSpace(c.FormValue("title")),
			Content: c.FormValue("content"),
			Tags:    domain.SplitTags(c.FormValue("tags")),
		}

		if upload, err := thumbnailFromForm(c); err != nil {
			return handleValidationError(c, "invalid thumbnail upload", "thumbnail", err.Error())
		} else if upload != nil {
			defer upload.close()
			input.Thumbnail = upload.file
		}

		article, err := container.PublishArticleUsecase.Execute(c.Request().Context(), user, input)
		if err != nil {
			return handleError(c, err, "publish_article")
		}

		return c.JSON(http.StatusCreated, article)
	}
}

func handleUpdateArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "article id must be a uuid", "id", c.Param("id"))
		}

		user, err := middleware.GetUserContext(c)
		if err != nil {
			return handleError(c, err, "update_article")
		}

		// Empty form fields mean "keep the stored value", matching the
		// editor's partial submit behavior.
		input := update_article_usecase.UpdateArticleInput{}
		if title := strings.TrimSpace(c.FormValue("title")); title != "" {
			input.Title = &title
		}
		if content := c.FormValue("content"); content != "" {
			input.Content = &content
		}
		if tags := c.FormValue("tags"); tags != "" {
			input.Tags = domain.SplitTags(tags)
		}

		if upload, err := thumbnailFromForm(c); err != nil {
			return handleValidationError(c, "invalid thumbnail upload", "thumbnail", err.Error())
		} else if upload != nil {
			defer upload.close()
			input.Thumbnail = upload.file
		}

		article, err := container.UpdateArticleUsecase.Execute(c.Request().Context(), user, id, input)
		if err != nil {
			return handleError(c, err, "update_article")
		}

		return c.JSON(http.StatusOK, article)
	}
}

func handleDeleteArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "article id must be a uuid", "id", c.Param("id"))
		}

		user, err := middleware.GetUserContext(c)
		if err != nil {
			return handleError(c, err, "delete_article")
		}

		if err := container.DeleteArticleUsecase.Execute(c.Request().Context(), user, id); err != nil {
			return handleError(c, err, "delete_article")
		}

		return c.JSON(http.StatusOK, DeleteArticleResponse{ID: id.String()})
	}
}

func handleAutoSaveDraft(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := middleware.GetUserContext(c)
		if err != nil {
			return handleError(c, err, "auto_save_draft")
		}

		var req AutoSaveDraftRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", err.Error())
		}

		draft := domain.ArticleDraft{
			Title:   req.Title,
			Content: req.Content,
		}
		if req.Tags != nil {
			draft.Tags = domain.SplitTags(*req.Tags)
		}
		if req.ID != "" {
			id, err := uuid.Parse(req.ID)
			if err != nil {
				return handleValidationError(c, "draft id must be a uuid", "id", req.ID)
			}
			draft.ID = id
		}

		result, err := container.AutoSaveDraftUsecase.Execute(c.Request().Context(), user, draft)
		if err != nil {
			// Auto-save must never surface as a hard failure: the
			// editor still holds the user's work. Report and move on.
			logger.Logger.ErrorContext(c.Request().Context(), "auto-save failed",
				"draft_id", req.ID, "error", err)
			return c.JSON(http.StatusOK, AutoSaveDraftFailure{Saved: false, ID: req.ID})
		}

		status := http.StatusOK
		if result.Created {
			status = http.StatusCreated
		}
		return c.JSON(status, result.Article)
	}
}

func handleLikeArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "article id must be a uuid", "id", c.Param("id"))
		}

		user, err := middleware.GetUserContext(c)
		if err != nil {
			return handleError(c, err, "like_article")
		}

		likedBy, err := container.ToggleLikeUsecase.Execute(c.Request().Context(), user, id)
		if err != nil {
			return handleError(c, err, "like_article")
		}

		return c.JSON(http.StatusOK, likedBy)
	}
}

func handleGetArticlePDF(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "article id must be a uuid", "id", c.Param("id"))
		}

		var buf bytes.Buffer
		if err := container.ExportArticlePDFUsecase.Execute(c.Request().Context(), id, &buf); err != nil {
			return handleError(c, err, "get_article_pdf")
		}

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="article-%s.pdf"`, id))
		return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
	}
}
