package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/Vansh-Pandey/SocialMedia/internal/repository"
	"github.com/Vansh-Pandey/SocialMedia/internal/transport/http/middleware"
	"github.com/google/uuid"
)

// Minimal in-memory repos backing real services under test.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
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

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
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

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) SearchByUsername(_ context.Context, query string, limit int) ([]domain.User, error) {
	return []domain.User{}, nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []domain.Message
}

func (r *memMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *memMessageRepo) ListBetween(_ context.Context, userID, otherID uuid.UUID) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []domain.Message{}
	for _, m := range r.messages {
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			result = append(result, m)
		}
	}
	return result, nil
}

type memPostRepo struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*domain.Post
	order []uuid.UUID
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uuid.UUID]*domain.Post)}
}

func (r *memPostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *post
	stored.Likes = []uuid.UUID{}
	stored.Comments = []domain.Comment{}
	r.posts[post.ID] = &stored
	r.order = append(r.order, post.ID)
	return nil
}

func (r *memPostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.posts[id]; ok {
		p := *stored
		return &p, nil
	}
	return nil, nil
}

func (r *memPostRepo) List(_ context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := []domain.Post{}
	for i := len(r.order) - 1; i >= 0; i-- {
		posts = append(posts, *r.posts[r.order[i]])
	}
	return posts, nil
}

func (r *memPostRepo) ToggleLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
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

func (r *memPostRepo) AddComment(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.posts[comment.PostID]; ok {
		stored.Comments = append(stored.Comments, *comment)
	}
	return nil
}

// stubFiles returns a fixed reference for every upload.
type stubFiles struct {
	ref string
}

func (s *stubFiles) Save(_ context.Context, _, _ string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	return s.ref, nil
}

// asUser attaches an authenticated user id the way the auth middleware does.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
}

// multipartBody builds a multipart form with the given fields and an optional
// file part.
func multipartBody(fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if fileField != "" {
		fw, _ := w.CreateFormFile(fileField, filename)
		_, _ = fw.Write(fileData)
	}
	_ = w.Close()
	return buf, w.FormDataContentType()
}

func doRequest(mux *http.ServeMux, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}
