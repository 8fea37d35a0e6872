package models

import (
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	AvatarURL   string    `gorm:"size:500" json:"avatar_url"`
	Specialties []string  `gorm:"type:jsonb;serializer:json" json:"specialties"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	if b.AvatarURL == "" {
		b.AvatarURL = DefaultAvatarURL(b.Name)
	}
	if b.Specialties == nil {
		b.Specialties = []string{}
	}
	return nil
}

// DefaultAvatarURL is the generated avatar used until a picture is uploaded.
func DefaultAvatarURL(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name)
}
