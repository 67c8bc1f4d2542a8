package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. The cookie handed to the browser is
// "<id>.<secret>"; only a bcrypt hash of the secret is stored.
type Session struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	SecretHash string    `gorm:"not null" json:"-"`
	ExpiresAt  time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"createdAt"`
}
