// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel mirrors the 'user_profiles' table. PostgreSQL generates
// UUIDs via uuid_generate_v7(). The provider UID carries the real uniqueness
// guarantee; the local id only exists for foreign keys.
type UserProfileModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UID        string    `gorm:"type:varchar(128);unique;not null"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Username   string    `gorm:"type:varchar(100);not null"`
	ProfilePic *string   `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	CollectionEntries []CollectionEntryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
