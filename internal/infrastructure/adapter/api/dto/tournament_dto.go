package dto

import (
	"time"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
)

// CreateTournamentRequest is the administrative tournament creation payload
type CreateTournamentRequest struct {
	Name         string    `json:"name" binding:"required"`
	Type         string    `json:"type" binding:"required,oneof=Solo Squad"`
	MatchType    string    `json:"matchType"`
	Map          string    `json:"map"`
	GameMode     string    `json:"gameMode"`
	Perspective  string    `json:"perspective"`
	Status       string    `json:"status" binding:"omitempty,oneof=Upcoming Active Completed"`
	EntryFee     int64     `json:"entryFee" binding:"min=0"`
	Prize        int64     `json:"prize" binding:"min=0"`
	TotalSlots   int       `json:"totalSlots" binding:"required,min=1"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	Duration     string    `json:"duration"`
	Rounds       int       `json:"rounds"`
	RoomID       string    `json:"roomId"`
	RoomPassword string    `json:"roomPassword"`
}

// ToEntity converts the request to a tournament draft
func (r *CreateTournamentRequest) ToEntity() entity.Tournament {
	return entity.Tournament{
		Name:         r.Name,
		Type:         entity.TournamentType(r.Type),
		MatchType:    r.MatchType,
		Map:          r.Map,
		GameMode:     r.GameMode,
		Perspective:  r.Perspective,
		Status:       entity.TournamentStatus(r.Status),
		EntryFee:     r.EntryFee,
		Prize:        r.Prize,
		TotalSlots:   r.TotalSlots,
		StartTime:    r.StartTime,
		Duration:     r.Duration,
		Rounds:       r.Rounds,
		RoomID:       r.RoomID,
		RoomPassword: r.RoomPassword,
	}
}

// UpdateStatusRequest is the administrative status transition payload
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Upcoming Active Completed"`
}

// TournamentResponse is the API view of a tournament. The room password is
// never listed.
type TournamentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	MatchType   string    `json:"matchType"`
	Map         string    `json:"map"`
	GameMode    string    `json:"gameMode"`
	Perspective string    `json:"perspective"`
	Status      string    `json:"status"`
	EntryFee    int64     `json:"entryFee"`
	Prize       int64     `json:"prize"`
	Joined      int       `json:"joined"`
	TotalSlots  int       `json:"totalSlots"`
	StartTime   time.Time `json:"startTime"`
	Duration    string    `json:"duration"`
	Rounds      int       `json:"rounds"`
	RoomID      string    `json:"roomId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTournamentResponse converts a tournament entity to its API view
func NewTournamentResponse(t *entity.Tournament) TournamentResponse {
	return TournamentResponse{
		ID:          t.ID,
		Name:        t.Name,
		Type:        string(t.Type),
		MatchType:   t.MatchType,
		Map:         t.Map,
		GameMode:    t.GameMode,
		Perspective: t.Perspective,
		Status:      string(t.Status),
		EntryFee:    t.EntryFee,
		Prize:       t.Prize,
		Joined:      t.Joined,
		TotalSlots:  t.TotalSlots,
		StartTime:   t.StartTime,
		Duration:    t.Duration,
		Rounds:      t.Rounds,
		RoomID:      t.RoomID,
		CreatedAt:   t.CreatedAt,
	}
}

// NewTournamentListResponse converts a slice of tournaments
func NewTournamentListResponse(tournaments []*entity.Tournament) []TournamentResponse {
	out := make([]TournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		out = append(out, NewTournamentResponse(t))
	}
	return out
}
