package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/Vansh-Pandey/SocialMedia/internal/repository"
	"github.com/google/uuid"
)

// In-memory repository fakes. Mutations take the repo mutex, mirroring the
// per-document atomicity the real store provides.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if id != user.ID && u.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) SearchByUsername(_ context.Context, query string, limit int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := []domain.User{}
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Username), strings.ToLower(query)) {
			matches = append(matches, u)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Username < matches[j].Username })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []domain.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeMessageRepo) ListBetween(_ context.Context, userID, otherID uuid.UUID) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Insertion order doubles as chronological order here; timestamps are
	// assigned at create time.
	result := []domain.Message{}
	for _, m := range r.messages {
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			result = append(result, m)
		}
	}
	return result, nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	users *fakeUserRepo
	posts map[uuid.UUID]*domain.Post
	order []uuid.UUID
}

func newFakePostRepo(users *fakeUserRepo) *fakePostRepo {
	return &fakePostRepo{users: users, posts: make(map[uuid.UUID]*domain.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *post
	stored.Likes = []uuid.UUID{}
	stored.Comments = []domain.Comment{}
	r.posts[post.ID] = &stored
	r.order = append(r.order, post.ID)
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	p := r.resolve(stored)
	return &p, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := []domain.Post{}
	for i := len(r.order) - 1; i >= 0; i-- {
		posts = append(posts, r.resolve(r.posts[r.order[i]]))
	}
	return posts, nil
}

func (r *fakePostRepo) ToggleLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.posts[postID]
	if !ok {
		return false, nil
	}
	for i, id := range stored.Likes {
		if id == userID {
			stored.Likes = append(stored.Likes[:i], stored.Likes[i+1:]...)
			return true, nil
		}
	}
	stored.Likes = append(stored.Likes, userID)
	return true, nil
}

func (r *fakePostRepo) AddComment(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.posts[comment.PostID]
	if !ok {
		return nil
	}
	stored.Comments = append(stored.Comments, *comment)
	return nil
}

// resolve copies the stored post and fills in the read-time display joins.
func (r *fakePostRepo) resolve(stored *domain.Post) domain.Post {
	p := *stored
	p.Likes = append([]uuid.UUID{}, stored.Likes...)
	p.Comments = append([]domain.Comment{}, stored.Comments...)
	if author, _ := r.users.GetByID(context.Background(), p.UserID); author != nil {
		p.Username = author.Username
		p.ProfilePic = author.ProfilePic
	}
	for i := range p.Comments {
		if commenter, _ := r.users.GetByID(context.Background(), p.Comments[i].UserID); commenter != nil {
			p.Comments[i].Username = commenter.Username
			p.Comments[i].ProfilePic = commenter.ProfilePic
		}
	}
	return p
}
