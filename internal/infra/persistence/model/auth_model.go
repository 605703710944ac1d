package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel mirrors the 'user_authentications' table. The composite
// unique index on (provider, provider_user_id) is what turns a concurrent
// duplicate first login into a constraint violation instead of a second account.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_provider_provider_user_id"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_provider_provider_user_id"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// SessionModel mirrors the 'sessions' table. The ID doubles as the opaque
// session cookie value; UserID stays NULL until a login binds an identity.
type SessionModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	OAuthState string     `gorm:"column:oauth_state;type:varchar(64)"`
	ExpiresAt  time.Time  `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
