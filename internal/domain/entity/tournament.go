package entity

import (
	"time"

	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
)

// TournamentType classifies how players enter the tournament
type TournamentType string

const (
	TypeSolo  TournamentType = "Solo"
	TypeSquad TournamentType = "Squad"
)

// TournamentStatus is the lifecycle state of a tournament
type TournamentStatus string

const (
	StatusUpcoming  TournamentStatus = "Upcoming"
	StatusActive    TournamentStatus = "Active"
	StatusCompleted TournamentStatus = "Completed"
)

// ValidTournamentType reports whether t is one of the supported entry types
func ValidTournamentType(t TournamentType) bool {
	return t == TypeSolo || t == TypeSquad
}

// ValidTournamentStatus reports whether s is a known lifecycle state
func ValidTournamentStatus(s TournamentStatus) bool {
	return s == StatusUpcoming || s == StatusActive || s == StatusCompleted
}

// Tournament represents a scheduled match with limited registration slots.
// Invariant: Joined <= TotalSlots. Once Status is Completed the roster is frozen.
type Tournament struct {
	ID           string
	Name         string
	Type         TournamentType
	MatchType    string
	Map          string
	GameMode     string
	Perspective  string
	Status       TournamentStatus
	EntryFee     int64 // Currency minor units, >= 0
	Prize        int64
	Joined       int // Registrant count, bounded by TotalSlots
	TotalSlots   int
	StartTime    time.Time
	Duration     string
	Rounds       int
	RoomID       string
	RoomPassword string // Shared only with registrants, never listed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTournament validates and creates a tournament in its initial state
func NewTournament(id string, t Tournament, timeProvider coreport.TimeProvider) (*Tournament, error) {
	if id == "" {
		return nil, errs.ErrInvalidTournamentID
	}
	if t.Name == "" {
		return nil, errs.ErrInvalidTournamentData
	}
	if !ValidTournamentType(t.Type) {
		return nil, errs.ErrInvalidTournamentData
	}
	if t.Status == "" {
		t.Status = StatusUpcoming
	}
	if !ValidTournamentStatus(t.Status) {
		return nil, errs.ErrInvalidTournamentData
	}
	if t.TotalSlots <= 0 {
		return nil, errs.ErrInvalidTournamentData
	}
	if t.EntryFee < 0 || t.Prize < 0 {
		return nil, errs.ErrInvalidTournamentData
	}
	if t.Joined < 0 || t.Joined > t.TotalSlots {
		return nil, errs.ErrInvalidTournamentData
	}

	now := timeProvider.Now()
	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now
	return &t, nil
}

// AcceptsRegistrations reports whether the tournament is in a state that
// allows new registrants. Capacity is checked separately.
func (t *Tournament) AcceptsRegistrations() bool {
	return t.Status == StatusUpcoming || t.Status == StatusActive
}

// HasFreeSlot reports whether at least one registration slot remains
func (t *Tournament) HasFreeSlot() bool {
	return t.Joined < t.TotalSlots
}

// CanRegister checks both lifecycle state and capacity, returning the
// specific registration failure when closed or full.
func (t *Tournament) CanRegister() error {
	if !t.AcceptsRegistrations() {
		return errs.ErrTournamentClosed
	}
	if !t.HasFreeSlot() {
		return errs.ErrTournamentFull
	}
	return nil
}

// TransitionTo moves the tournament to a new lifecycle state.
// Completed is terminal: no further transitions are allowed.
func (t *Tournament) TransitionTo(status TournamentStatus, timeProvider coreport.TimeProvider) error {
	if !ValidTournamentStatus(status) {
		return errs.ErrInvalidTournamentData
	}
	if t.Status == StatusCompleted {
		return errs.ErrTournamentClosed
	}
	t.Status = status
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// ShouldActivate reports whether an upcoming tournament has reached its
// start time and should be promoted to Active.
func (t *Tournament) ShouldActivate(now time.Time) bool {
	return t.Status == StatusUpcoming && !t.StartTime.After(now)
}
