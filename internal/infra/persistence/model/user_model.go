package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Roles are stored comma-separated.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Avatar       string     `gorm:"type:varchar(1024)"`
	FirstName    string     `gorm:"type:varchar(100);not null"`
	LastName     string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	BirthDate    *time.Time `gorm:"type:date"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	PhoneNumber  string     `gorm:"type:varchar(32)"`
	Roles        string     `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
