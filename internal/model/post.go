package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a feed entry. Likes and comments serialize as ordered arrays,
// most recent first; they live in their own tables so like/unlike and
// comment add/remove are single-row writes rather than whole-document
// rewrites.
type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	Avatar    string    `json:"avatar" gorm:"size:512"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Likes    []Like    `json:"likes" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Like marks that a user liked a post. The composite unique index makes a
// second like by the same user a constraint violation.
type Like struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	PostID    uuid.UUID `json:"-" gorm:"type:char(36);not null;uniqueIndex:idx_likes_post_user"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null;uniqueIndex:idx_likes_post_user"`
	CreatedAt time.Time `json:"-"`
}

// Comment is a reply attached to a post. The surrogate auto-increment key
// orders comments; CommentID is the identifier exposed over the API.
type Comment struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	CommentID uuid.UUID `json:"id" gorm:"type:char(36);uniqueIndex;not null"`
	PostID    uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	Avatar    string    `json:"avatar" gorm:"size:512"`
	CreatedAt time.Time `json:"date"`
}

// BeforeCreate sets the public comment UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.CommentID == uuid.Nil {
		c.CommentID = uuid.New()
	}
	return nil
}
