package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/Vansh-Pandey/SocialMedia/internal/repository"
	"github.com/google/uuid"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	postRepo repository.PostRepository
	notifier Notifier
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) SetNotifier(n Notifier) {
	s.notifier = n
}

// List returns all posts newest first with display fields resolved.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// Create stores a new post with an empty like-set and comment list. The image
// reference comes from the file-storage collaborator and stays empty when no
// image was uploaded.
func (s *PostService) Create(ctx context.Context, userID uuid.UUID, content, image string) (*domain.Post, error) {
	post := &domain.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		Image:     image,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	full, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyNewPost(full)
	}

	return full, nil
}

// ToggleLike adds the caller to the post's like-set, or removes them if
// already present. Repeated calls alternate state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	found, err := s.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("toggling like: %w", err)
	}
	if !found {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyPostLiked(post, userID)
	}

	return post, nil
}

// AddComment appends a comment with a server-assigned timestamp. Comment
// order is append order.
func (s *PostService) AddComment(ctx context.Context, userID, postID uuid.UUID, text string) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	full, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyNewComment(full, userID)
	}

	return full, nil
}
