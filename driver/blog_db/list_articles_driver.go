package blog_db

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"blog-backend/domain"
	"blog-backend/utils/logger"
)

// ListPublishedArticles returns published articles matching the filter.
// Free text and tag combine with AND. A text search ranks by relevance;
// otherwise ordering is newest-first.
func (r *BlogDBRepository) ListPublishedArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT a.id, a.title, a.content, a.author_id, COALESCE(u.username, ''),
		       a.tags, a.thumbnail, a.liked_by, a.view_count, a.is_draft,
		       a.created_at, a.updated_at
		FROM articles a
		LEFT JOIN users u ON u.id = a.author_id
		WHERE a.is_draft = FALSE`)

	var args []interface{}
	searchArg := 0

	if search := strings.TrimSpace(filter.SearchText); search != "" {
		args = append(args, search)
		searchArg = len(args)
		sb.WriteString(`
		AND a.search_vector @@ websearch_to_tsquery('english', $` + strconv.Itoa(searchArg) + `)`)
	}

	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		args = append(args, tag)
		sb.WriteString(`
		AND $` + strconv.Itoa(len(args)) + ` = ANY(a.tags)`)
	}

	if searchArg > 0 {
		sb.WriteString(`
		ORDER BY ts_rank(a.search_vector, websearch_to_tsquery('english', $` + strconv.Itoa(searchArg) + `)) DESC, a.created_at DESC`)
	} else {
		sb.WriteString(`
		ORDER BY a.created_at DESC`)
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		err = fmt.Errorf("list articles: %w", err)
		logger.Logger.ErrorContext(ctx, "error listing articles", "error", err, "search", filter.SearchText, "tag", filter.Tag)
		return nil, err
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		var article domain.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.AuthorID,
			&article.AuthorName,
			&article.Tags,
			&article.Thumbnail,
			&article.LikedBy,
			&article.ViewCount,
			&article.IsDraft,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			err = fmt.Errorf("scan article: %w", err)
			logger.Logger.ErrorContext(ctx, "error scanning article row", "error", err)
			return nil, err
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		err = fmt.Errorf("iterate articles: %w", err)
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "listed published articles", "count", len(articles), "search", filter.SearchText, "tag", filter.Tag)
	return articles, nil
}
