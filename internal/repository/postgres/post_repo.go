package postgres

import (
	"context"
	"errors"

	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, user_id, content, image, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		post.ID, post.UserID, post.Content, post.Image, post.CreatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.content, p.image, p.created_at, u.username, u.profile_pic
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`

	var p domain.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Content, &p.Image, &p.CreatedAt, &p.Username, &p.ProfilePic,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	posts := []domain.Post{p}
	if err := r.attachInteractions(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// List returns all posts newest first, with author and commenter display
// fields resolved.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.content, p.image, p.created_at, u.username, u.profile_pic
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &p.Image, &p.CreatedAt, &p.Username, &p.ProfilePic); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachInteractions(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike flips userID's membership in the post's like-set inside a single
// transaction. The row lock on the post serializes concurrent toggles, and
// the (post_id, user_id) primary key keeps the set free of duplicates.
func (r *PostRepo) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		_, err = tx.Exec(ctx, `
			INSERT INTO post_likes (post_id, user_id, created_at)
			VALUES ($1, $2, now())
			ON CONFLICT (post_id, user_id) DO NOTHING`, postID, userID)
		if err != nil {
			return false, err
		}
	}

	return true, tx.Commit(ctx)
}

func (r *PostRepo) AddComment(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO post_comments (id, post_id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.Text, comment.CreatedAt,
	)
	return err
}

// attachInteractions fills in the like-sets and ordered comment lists for the
// given posts with two batched queries.
func (r *PostRepo) attachInteractions(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(posts))
	index := make(map[uuid.UUID]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		index[posts[i].ID] = i
		posts[i].Likes = []uuid.UUID{}
		posts[i].Comments = []domain.Comment{}
	}

	likeRows, err := r.pool.Query(ctx, `
		SELECT post_id, user_id
		FROM post_likes
		WHERE post_id = ANY($1)
		ORDER BY created_at ASC`, ids)
	if err != nil {
		return err
	}
	defer likeRows.Close()

	for likeRows.Next() {
		var postID, userID uuid.UUID
		if err := likeRows.Scan(&postID, &userID); err != nil {
			return err
		}
		i := index[postID]
		posts[i].Likes = append(posts[i].Likes, userID)
	}
	if err := likeRows.Err(); err != nil {
		return err
	}

	commentRows, err := r.pool.Query(ctx, `
		SELECT c.id, c.post_id, c.user_id, c.body, c.created_at, u.username, u.profile_pic
		FROM post_comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = ANY($1)
		ORDER BY c.seq ASC`, ids)
	if err != nil {
		return err
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var c domain.Comment
		if err := commentRows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.CreatedAt, &c.Username, &c.ProfilePic); err != nil {
			return err
		}
		i := index[c.PostID]
		posts[i].Comments = append(posts[i].Comments, c)
	}
	return commentRows.Err()
}
