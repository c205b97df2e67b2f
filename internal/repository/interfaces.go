package repository

import (
	"context"
	"errors"

	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/google/uuid"
)

// ErrUsernameTaken is returned by implementations when a write collides with
// the unique constraint on usernames.
var ErrUsernameTaken = errors.New("username already taken")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SearchByUsername(ctx context.Context, query string, limit int) ([]domain.User, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListBetween(ctx context.Context, userID, otherID uuid.UUID) ([]domain.Message, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	// ToggleLike atomically flips userID's membership in the post's like-set.
	// Returns false when the post does not exist.
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	AddComment(ctx context.Context, comment *domain.Comment) error
}
