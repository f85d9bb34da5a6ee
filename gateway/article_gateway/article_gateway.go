package article_gateway

import (
	"blog-backend/driver/blog_db"
	"blog-backend/utils/htmlutil"
)

// ArticleGateway bridges the article usecases to the database driver.
// It owns the anti-corruption rules: HTML sanitation of user content,
// tag normalization, and the publish validation on newly created rows.
type ArticleGateway struct {
	repo      *blog_db.BlogDBRepository
	sanitizer *htmlutil.Sanitizer
}

func NewArticleGateway(repo *blog_db.BlogDBRepository) *ArticleGateway {
	return &ArticleGateway{
		repo:      repo,
		sanitizer: htmlutil.NewSanitizer(),
	}
}
