package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL assigns UUIDs via gen_random_uuid().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	FirstName     string    `gorm:"type:varchar(100)"`
	LastName      string    `gorm:"type:varchar(100)"`
	Role          string    `gorm:"type:varchar(20);not null;default:'user'"`
	Phone         string    `gorm:"type:varchar(50)"`
	Address       string    `gorm:"type:text"`
	Birthday      string    `gorm:"type:varchar(50)"`
	FavoriteColor string    `gorm:"type:varchar(50)"`
	Metadata      []byte    `gorm:"type:jsonb"`
	PasswordHash  string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	Sessions        []SessionModel        `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
