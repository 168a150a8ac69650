package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the public-facing identity a user curates. Exactly one
// profile exists per user; it is created and updated through the same
// upsert endpoint.
type Profile struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	Handle   string    `json:"handle" gorm:"uniqueIndex;size:40;not null"`
	Username string    `json:"username" gorm:"size:255"`
	Bio      string    `json:"bio" gorm:"type:text"`

	// Social links
	YouTube   string `json:"youtube,omitempty" gorm:"size:512"`
	Twitter   string `json:"twitter,omitempty" gorm:"size:512"`
	Facebook  string `json:"facebook,omitempty" gorm:"size:512"`
	LinkedIn  string `json:"linkedin,omitempty" gorm:"size:512"`
	Instagram string `json:"instagram,omitempty" gorm:"size:512"`
	Snapchat  string `json:"snapchat,omitempty" gorm:"size:512"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
