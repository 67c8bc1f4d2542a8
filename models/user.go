package models

import (
	"time"

	"github.com/google/uuid"
)

// User is created on the first successful Google OAuth callback and upserted
// by GoogleID on every login after that. Users are never deleted here.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	GoogleID    string    `gorm:"unique;not null" json:"googleId"`
	Email       string    `gorm:"not null" json:"email"`
	DisplayName string    `gorm:"not null" json:"displayName"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	Picture     string    `json:"picture,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"createdAt"`
	LastLogin   time.Time `gorm:"not null;default:now()" json:"lastLogin"`
}
