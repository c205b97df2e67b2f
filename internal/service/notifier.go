package service

import (
	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/google/uuid"
)

// Notifier pushes realtime events to connected clients. Services treat a nil
// notifier as a no-op; REST remains the only write path.
type Notifier interface {
	NotifyNewMessage(msg *domain.Message)
	NotifyNewPost(post *domain.Post)
	NotifyPostLiked(post *domain.Post, likerID uuid.UUID)
	NotifyNewComment(post *domain.Post, commenterID uuid.UUID)
}
