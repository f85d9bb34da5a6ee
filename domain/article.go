package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Article is the central entity of the platform. A draft tolerates
// incomplete fields; a published article must carry a non-empty title
// and content.
type Article struct {
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	AuthorID   uuid.UUID   `json:"author_id"`
	AuthorName string      `json:"author_name,omitempty"`
	Tags       []string    `json:"tags"`
	Thumbnail  string      `json:"thumbnail,omitempty"`
	LikedBy    []uuid.UUID `json:"liked_by"`
	ViewCount  int64       `json:"view_count"`
	IsDraft    bool        `json:"is_draft"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// IsLikedBy reports whether the given actor is a member of the like set.
func (a *Article) IsLikedBy(actorID uuid.UUID) bool {
	for _, id := range a.LikedBy {
		if id == actorID {
			return true
		}
	}
	return false
}

// ArticleDraft carries the fields of an auto-save request. ID is the
// caller's last-known draft identifier; uuid.Nil means "no prior draft".
// Nil fields were not supplied and keep their stored value on update.
type ArticleDraft struct {
	ID      uuid.UUID
	Title   *string
	Content *string
	Tags    []string
}

// ArticleUpdate is a partial update: nil fields retain the stored value.
// Tags, when present, replace the stored set wholesale.
type ArticleUpdate struct {
	Title     *string
	Content   *string
	Tags      []string
	Thumbnail *string
}

// ArticleFilter restricts the public listing. Both filters combine with
// logical AND; zero values mean "no restriction".
type ArticleFilter struct {
	SearchText string
	Tag        string
}

const UntitledDraftTitle = "Untitled Draft"

// NormalizeTags trims every entry and drops the ones left empty.
// The stored order is preserved for display.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

// SplitTags parses the comma-separated tag field used by the multipart
// endpoints into a normalized tag slice.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(raw, ","))
}

// ValidateForPublish enforces the published-state invariant: non-empty
// title and content.
func (a *Article) ValidateForPublish() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(a.Content) == "" {
		return ErrContentRequired
	}
	return nil
}
