package domain

import "errors"

var (
	// 記事関連エラー
	ErrArticleNotFound = errors.New("article not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")

	// 認証・認可エラー
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotArticleAuthor   = errors.New("actor is not the article author")
	ErrInvalidUserContext = errors.New("invalid user context")
)
