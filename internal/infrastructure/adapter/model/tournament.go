package model

import (
	"time"
)

// Tournament represents the database model for tournaments
type Tournament struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Name         string    `gorm:"not null;size:255"`
	Type         string    `gorm:"not null;size:20"`
	MatchType    string    `gorm:"size:50"`
	Map          string    `gorm:"size:50"`
	GameMode     string    `gorm:"size:50"`
	Perspective  string    `gorm:"size:20"`
	Status       string    `gorm:"not null;size:20;index"`
	EntryFee     int64     `gorm:"not null"` // Minor units
	Prize        int64     `gorm:"not null"`
	Joined       int       `gorm:"not null;default:0;check:joined <= total_slots"`
	TotalSlots   int       `gorm:"not null"`
	StartTime    time.Time `gorm:"not null"`
	Duration     string    `gorm:"size:50"`
	Rounds       int       `gorm:"not null;default:1"`
	RoomID       string    `gorm:"size:100"`
	RoomPassword string    `gorm:"size:100"`
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Tournament
func (Tournament) TableName() string {
	return "tournaments"
}
