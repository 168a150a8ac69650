package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/auth"
	errs "devconnect/internal/errors"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

// PostInput carries caller-supplied post content. Name and Avatar are
// denormalized onto the post so the feed renders without user lookups.
type PostInput struct {
	Text   string
	Name   string
	Avatar string
}

// PostService applies the feed mutation rules: only the owner may delete a
// post, likes are idempotent-guarded, and comments are open to any
// authenticated user.
type PostService interface {
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Create(ctx context.Context, claims *auth.Claims, input PostInput) (*model.Post, error)
	Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error
	Like(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*model.Post, error)
	Unlike(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*model.Post, error)
	AddComment(ctx context.Context, claims *auth.Claims, id uuid.UUID, input PostInput) (*model.Post, error)
	DeleteComment(ctx context.Context, claims *auth.Claims, id, commentID uuid.UUID) (*model.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, claims *auth.Claims, input PostInput) (*model.Post, error) {
	avatar := input.Avatar
	if avatar == "" {
		avatar = claims.Avatar
	}

	post := &model.Post{
		ID:     uuid.New(),
		UserID: claims.UserID,
		Text:   input.Text,
		Name:   input.Name,
		Avatar: avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return s.Get(ctx, post.ID)
}

// Delete removes a post. Only the owner may do this.
func (s *postService) Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != claims.UserID {
		return errs.ErrNotPostOwner
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Like records a like unless the caller already liked the post.
func (s *postService) Like(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*model.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.HasLike(ctx, post.ID, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("check like: %w", err)
	}
	if liked {
		return nil, errs.ErrAlreadyLiked
	}

	like := &model.Like{PostID: post.ID, UserID: claims.UserID}
	if err := s.postRepo.AddLike(ctx, like); err != nil {
		// The unique index catches a like racing this check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrAlreadyLiked
		}
		return nil, fmt.Errorf("add like: %w", err)
	}
	return s.Get(ctx, post.ID)
}

// Unlike removes the caller's like; absence of one is an error, not a no-op.
func (s *postService) Unlike(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*model.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.postRepo.RemoveLike(ctx, post.ID, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("remove like: %w", err)
	}
	if !removed {
		return nil, errs.ErrNotLiked
	}
	return s.Get(ctx, post.ID)
}

func (s *postService) AddComment(ctx context.Context, claims *auth.Claims, id uuid.UUID, input PostInput) (*model.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	avatar := input.Avatar
	if avatar == "" {
		avatar = claims.Avatar
	}

	comment := &model.Comment{
		CommentID: uuid.New(),
		PostID:    post.ID,
		UserID:    claims.UserID,
		Text:      input.Text,
		Name:      input.Name,
		Avatar:    avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return s.Get(ctx, post.ID)
}

// DeleteComment removes a comment by id. Any authenticated user may do
// this; the check is existence, not authorship.
func (s *postService) DeleteComment(ctx context.Context, claims *auth.Claims, id, commentID uuid.UUID) (*model.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.postRepo.RemoveComment(ctx, post.ID, commentID)
	if err != nil {
		return nil, fmt.Errorf("remove comment: %w", err)
	}
	if !removed {
		return nil, errs.ErrCommentNotFound
	}
	return s.Get(ctx, post.ID)
}
