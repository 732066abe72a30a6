// Package backend is the HTTP client for the sports backend API. The
// backend owns all persistence and validation; this client makes a single
// attempt per call and surfaces backend statuses as typed errors.
package backend

import (
	"github.com/athlonet/sportdesk/internal/catalog"
	"github.com/athlonet/sportdesk/internal/perf"
)

// Athlete is the backend athlete shape. Team and position may arrive as a
// bare code string or an expanded object; perf.Ref absorbs both.
type Athlete struct {
	AthleteID   int            `json:"athleteId"`
	Code        string         `json:"code"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	DateOfBirth string         `json:"dateOfBirth"`
	Nationality string         `json:"nationality"`
	Gender      catalog.Gender `json:"gender"`
	Height      float64        `json:"height,omitempty"`
	Weight      float64        `json:"weight,omitempty"`
	Bio         string         `json:"bio,omitempty"`
	IsActive    bool           `json:"isActive"`
	TeamCode    string         `json:"teamCode,omitempty"`
	PositionID  *int           `json:"positionId,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`

	Team        perf.Ref            `json:"team,omitempty"`
	Position    perf.Ref            `json:"position,omitempty"`
	Disciplines []AthleteDiscipline `json:"disciplines,omitempty"`
}

// AthleteDiscipline links an individual-sport athlete to a discipline.
type AthleteDiscipline struct {
	ID           int                 `json:"id"`
	AthleteID    int                 `json:"athleteId"`
	DisciplineID int                 `json:"disciplineId"`
	CurrentRank  *int                `json:"currentRank,omitempty"`
	Discipline   *perf.DisciplineRef `json:"discipline,omitempty"`
}

// Team is the backend team shape.
type Team struct {
	TeamID    int    `json:"teamId"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	SportID   int    `json:"sportId"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`

	Sport *perf.SportRef `json:"sport,omitempty"`
}

// Event is the backend event shape.
type Event struct {
	EventID   int                 `json:"eventId"`
	Code      string              `json:"code"`
	Name      string              `json:"name"`
	SportID   int                 `json:"sportId,omitempty"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate,omitempty"`
	Location  string              `json:"location,omitempty"`
	Status    catalog.EventStatus `json:"status,omitempty"`

	Sport *perf.SportRef `json:"sport,omitempty"`
}

// Position is a team-sport position.
type Position struct {
	PositionID int    `json:"positionId"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	SportID    int    `json:"sportId"`
}

// Sport is the backend sport shape.
type Sport struct {
	SportID     int    `json:"sportId"`
	Name        string `json:"name"`
	IsTeamSport bool   `json:"isTeamSport"`
}

// Discipline is the backend discipline shape.
type Discipline struct {
	DisciplineID int    `json:"disciplineId"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	SportID      int    `json:"sportId"`
}

// Page is the backend's pagination envelope for list endpoints.
type Page[T any] struct {
	Data       []T  `json:"data"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ListParams are the query parameters shared by the list endpoints.
// Zero values are omitted from the query string.
type ListParams struct {
	Search    string
	Page      int
	Limit     int
	SportType catalog.SportType
	Gender    catalog.Gender
	TeamCode  string
	AthleteID int
	EventID   int
	DateFrom  string
	DateTo    string
}

// CreateIndividualAthlete is the payload for POST /athletes/individual.
type CreateIndividualAthlete struct {
	Code        string                 `json:"code"`
	FirstName   string                 `json:"firstName"`
	LastName    string                 `json:"lastName"`
	DateOfBirth string                 `json:"dateOfBirth"`
	Nationality string                 `json:"nationality"`
	Gender      catalog.Gender         `json:"gender"`
	Height      float64                `json:"height"`
	Weight      float64                `json:"weight"`
	Bio         string                 `json:"bio,omitempty"`
	SportType   catalog.SportType      `json:"sportType"`
	Disciplines []DisciplineEnrollment `json:"disciplines"`
}

// DisciplineEnrollment picks a discipline for a new individual athlete.
type DisciplineEnrollment struct {
	Code        string `json:"code"`
	CurrentRank *int   `json:"currentRank,omitempty"`
}

// CreateTeamAthlete is the payload for POST /athletes/team.
type CreateTeamAthlete struct {
	Code         string            `json:"code"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	TeamCode     string            `json:"teamCode"`
	PositionCode string            `json:"positionCode"`
	SportType    catalog.SportType `json:"sportType"`
	DateOfBirth  string            `json:"dateOfBirth"`
	Nationality  string            `json:"nationality"`
	Gender       catalog.Gender    `json:"gender"`
	Height       float64           `json:"height"`
	Weight       float64           `json:"weight"`
	Bio          string            `json:"bio,omitempty"`
}

// CreateTeam is the payload for POST /teams.
type CreateTeam struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	SportID int    `json:"sportId"`
}

// CreateEvent is the payload for POST /events.
type CreateEvent struct {
	Code      string              `json:"code"`
	Name      string              `json:"name"`
	SportType catalog.SportType   `json:"sportType"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate,omitempty"`
	Location  string              `json:"location,omitempty"`
	Status    catalog.EventStatus `json:"status,omitempty"`
}

// ChatMessage is one turn of the AI assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload for POST /ai/chat.
type ChatRequest struct {
	Input    string        `json:"input"`
	Messages []ChatMessage `json:"messages,omitempty"`
}

// ChatResponse is the AI assistant's reply.
type ChatResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}
