package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (*PostService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	return NewPostService(newFakePostRepo(users)), users
}

func addUser(t *testing.T, users *fakeUserRepo, username, pic string) uuid.UUID {
	t.Helper()
	u := &domain.User{ID: uuid.New(), Username: username, ProfilePic: pic, CreatedAt: time.Now()}
	require.NoError(t, users.Create(context.Background(), u))
	return u.ID
}

func TestToggleLikeRoundTrip(t *testing.T) {
	t.Parallel()

	svc, users := newPostFixture(t)
	ctx := context.Background()
	author := addUser(t, users, "author", "")
	liker := addUser(t, users, "liker", "")

	post, err := svc.Create(ctx, author, "hello world", "")
	require.NoError(t, err)
	require.Empty(t, post.Likes)

	liked, err := svc.ToggleLike(ctx, liker, post.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{liker}, liked.Likes)

	unliked, err := svc.ToggleLike(ctx, liker, post.ID)
	require.NoError(t, err)
	require.Empty(t, unliked.Likes)
}

func TestToggleLikeConcurrentDistinctUsers(t *testing.T) {
	t.Parallel()

	svc, users := newPostFixture(t)
	ctx := context.Background()
	author := addUser(t, users, "author", "")

	post, err := svc.Create(ctx, author, "pile on", "")
	require.NoError(t, err)

	const k = 25
	likers := make([]uuid.UUID, k)
	for i := range likers {
		likers[i] = uuid.New()
	}

	errc := make(chan error, k)
	var wg sync.WaitGroup
	for _, id := range likers {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := svc.ToggleLike(ctx, id, post.ID)
			errc <- err
		}(id)
	}
	wg.Wait()
	close(errc)
	for err := range errc {
		require.NoError(t, err)
	}

	final, err := svc.ToggleLike(ctx, author, post.ID)
	require.NoError(t, err)
	require.Len(t, final.Likes, k+1)

	seen := make(map[uuid.UUID]bool)
	for _, id := range final.Likes {
		require.False(t, seen[id], "duplicate like for %s", id)
		seen[id] = true
	}
}

func TestToggleLikeUnknownPost(t *testing.T) {
	t.Parallel()

	svc, _ := newPostFixture(t)

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentsKeepAppendOrderWithResolvedAuthors(t *testing.T) {
	t.Parallel()

	svc, users := newPostFixture(t)
	ctx := context.Background()
	author := addUser(t, users, "author", "/uploads/author.png")
	commenter := addUser(t, users, "commenter", "/uploads/commenter.png")

	post, err := svc.Create(ctx, author, "discuss", "")
	require.NoError(t, err)

	for _, text := range []string{"first", "second", "third"} {
		_, err := svc.AddComment(ctx, commenter, post.ID, text)
		require.NoError(t, err)
	}

	full, err := svc.AddComment(ctx, author, post.ID, "fourth")
	require.NoError(t, err)
	require.Len(t, full.Comments, 4)

	texts := make([]string, len(full.Comments))
	for i, c := range full.Comments {
		texts[i] = c.Text
	}
	require.Equal(t, []string{"first", "second", "third", "fourth"}, texts)

	require.Equal(t, "commenter", full.Comments[0].Username)
	require.Equal(t, "/uploads/commenter.png", full.Comments[0].ProfilePic)
	require.Equal(t, "author", full.Comments[3].Username)
}

func TestAddCommentUnknownPost(t *testing.T) {
	t.Parallel()

	svc, _ := newPostFixture(t)

	_, err := svc.AddComment(context.Background(), uuid.New(), uuid.New(), "into the void")
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreatePostImageReference(t *testing.T) {
	t.Parallel()

	svc, users := newPostFixture(t)
	ctx := context.Background()
	author := addUser(t, users, "author", "")

	plain, err := svc.Create(ctx, author, "no picture", "")
	require.NoError(t, err)
	require.Empty(t, plain.Image)

	withImage, err := svc.Create(ctx, author, "picture", "/uploads/1700000000000.jpg")
	require.NoError(t, err)
	require.Equal(t, "/uploads/1700000000000.jpg", withImage.Image)
}

func TestListReturnsNewestFirstWithAuthorResolved(t *testing.T) {
	t.Parallel()

	svc, users := newPostFixture(t)
	ctx := context.Background()
	author := addUser(t, users, "author", "/uploads/me.png")

	for _, content := range []string{"oldest", "middle", "newest"} {
		_, err := svc.Create(ctx, author, content, "")
		require.NoError(t, err)
	}

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	require.Equal(t, "newest", posts[0].Content)
	require.Equal(t, "oldest", posts[2].Content)
	for _, p := range posts {
		require.Equal(t, "author", p.Username)
		require.Equal(t, "/uploads/me.png", p.ProfilePic)
		require.NotNil(t, p.Likes)
		require.NotNil(t, p.Comments)
	}
}
