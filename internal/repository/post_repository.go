package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/model"
)

// PostRepository defines post persistence operations. Likes and comments
// are mutated as individual rows so concurrent requests against the same
// post cannot overwrite each other's writes.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddLike(ctx context.Context, like *model.Like) error
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (removed bool, err error)
	HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	AddComment(ctx context.Context, comment *model.Comment) error
	RemoveComment(ctx context.Context, postID, commentID uuid.UUID) (removed bool, err error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// newestFirst orders child rows so index 0 is always the latest entry.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Preload("Likes", newestFirst).
		Preload("Comments", newestFirst).
		Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).
		Preload("Likes", newestFirst).
		Preload("Comments", newestFirst).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *postRepository) AddLike(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *postRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *postRepository) RemoveComment(ctx context.Context, postID, commentID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND comment_id = ?", postID, commentID).
		Delete(&model.Comment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
