package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserContext represents the authenticated actor of a request.
type UserContext struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	SessionID string    `json:"session_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks if the user context is usable and not expired. A zero
// ExpiresAt means the token carried no expiry and is left to the token
// layer to police.
func (uc *UserContext) IsValid() bool {
	if uc.UserID == uuid.Nil {
		return false
	}
	return uc.ExpiresAt.IsZero() || uc.ExpiresAt.After(time.Now())
}

type contextKey string

const UserContextKey contextKey = "user_context"

func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, ErrInvalidUserContext
	}
	if !user.IsValid() {
		return nil, ErrInvalidUserContext
	}
	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
