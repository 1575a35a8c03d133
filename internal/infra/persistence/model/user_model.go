// Package model holds the GORM persistence models mirroring the relational schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(60);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Address      string    `gorm:"type:varchar(400)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'USER';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Deleting a user cascades to their ratings; an owned store survives
	// with its owner reference cleared.
	Store   *StoreModel   `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	Ratings []RatingModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
