package rest

import (
	"net/http"

	"blog-backend/di"
	"blog-backend/middleware"
	"blog-backend/utils/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var requestValidator = validator.New()

func registerCommentRoutes(v1 *echo.Group, container *di.ApplicationComponents, auth *middleware.AuthMiddleware) {
	v1.GET("/comments/:articleId", handleListComments(container))
	v1.POST("/comments/:articleId", handleAddComment(container), auth.RequireAuth())
}

func handleListComments(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, err := uuid.Parse(c.Param("articleId"))
		if err != nil {
			return handleValidationError(c, "article id must be a uuid", "articleId", c.Param("articleId"))
		}

		comments, err := container.ListCommentsUsecase.Execute(c.Request().Context(), articleID)
		if err != nil {
			return handleError(c, err, "list_comments")
		}

		return c.JSON(http.StatusOK, comments)
	}
}

func handleAddComment(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, err := uuid.Parse(c.Param("articleId"))
		if err != nil {
			return handleValidationError(c, "article id must be a uuid", "articleId", c.Param("articleId"))
		}

		user, err := middleware.GetUserContext(c)
		if err != nil {
			return handleError(c, err, "add_comment")
		}

		var req AddCommentRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", err.Error())
		}
		if err := requestValidator.Validate(&req); err != nil {
			return handleValidationError(c, err.Error(), "message", req.Message)
		}

		comment, err := container.AddCommentUsecase.Execute(c.Request().Context(), user, articleID, req.Message)
		if err != nil {
			return handleError(c, err, "add_comment")
		}

		return c.JSON(http.StatusCreated, comment)
	}
}
