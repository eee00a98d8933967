package model

import (
	"time"
)

// Registration represents the database model for tournament registrations.
// The composite unique index is what makes duplicate registration attempts
// fail in the store instead of double-charging.
type Registration struct {
	ID           string    `gorm:"primaryKey;size:36"`
	UserID       string    `gorm:"not null;size:36;uniqueIndex:idx_user_tournament;index"`
	TournamentID string    `gorm:"not null;size:36;uniqueIndex:idx_user_tournament;index"`
	AmountPaid   int64     `gorm:"not null"` // Minor units
	CreatedAt    time.Time `gorm:"not null"`

	// Define relationships
	User       User       `gorm:"foreignKey:UserID;references:ID"`
	Tournament Tournament `gorm:"foreignKey:TournamentID;references:ID"`
}

// TableName specifies the table name for Registration
func (Registration) TableName() string {
	return "registrations"
}
