// Package perf normalizes performance records. The backend stores one row
// shape for all five sports and populates only the field group matching the
// athlete's sport; perf translates that union-by-optional-fields wire format
// into a tagged variant and renders uniform display summaries from it.
package perf

import "encoding/json"

// Record is the backend wire shape of a performance. Sport-specific fields
// are pointers so absent and zero stay distinguishable; the backend is the
// sole writer of performanceId and the best flags.
type Record struct {
	PerformanceID int    `json:"performanceId"`
	AthleteID     int    `json:"athleteId"`
	EventID       int    `json:"eventId"`
	DisciplineID  *int   `json:"disciplineId,omitempty"`
	Date          string `json:"date"`

	Position *int     `json:"position,omitempty"`
	Points   *float64 `json:"points,omitempty"`

	// Track and field
	Time     *float64 `json:"time,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
	Height   *float64 `json:"height,omitempty"`

	// Basketball
	TwoPoints   *int `json:"twoPoints,omitempty"`
	ThreePoints *int `json:"threePoints,omitempty"`
	FreeThrows  *int `json:"freeThrows,omitempty"`
	FieldGoals  *int `json:"fieldGoals,omitempty"`
	Rebounds    *int `json:"rebounds,omitempty"`
	Steals      *int `json:"steals,omitempty"`
	Blocks      *int `json:"blocks,omitempty"`
	Turnovers   *int `json:"turnovers,omitempty"`

	// Football
	GoalsScored   *int `json:"goalsScored,omitempty"`
	GoalsConceded *int `json:"goalsConceded,omitempty"`
	MinutesPlayed *int `json:"minutesPlayed,omitempty"`
	YellowCards   *int `json:"yellowCards,omitempty"`
	RedCards      *int `json:"redCards,omitempty"`
	Saves         *int `json:"saves,omitempty"`

	// Shared by basketball and football
	Assists *int `json:"assists,omitempty"`

	// Wrestling
	Wins           *int `json:"wins,omitempty"`
	Losses         *int `json:"losses,omitempty"`
	Pins           *int `json:"pins,omitempty"`
	TechnicalFalls *int `json:"technicalFalls,omitempty"`
	Decisions      *int `json:"decisions,omitempty"`

	// Boxing
	Rounds        *int `json:"rounds,omitempty"`
	Knockouts     *int `json:"knockouts,omitempty"`
	Knockdowns    *int `json:"knockdowns,omitempty"`
	PunchesLanded *int `json:"punchesLanded,omitempty"`
	PunchesThrown *int `json:"punchesThrown,omitempty"`

	Notes          string `json:"notes,omitempty"`
	IsPersonalBest bool   `json:"isPersonalBest"`
	IsSeasonBest   bool   `json:"isSeasonBest"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`

	// Optional expansions
	Athlete    *AthleteRef    `json:"athlete,omitempty"`
	Event      *EventRef      `json:"event,omitempty"`
	Discipline *DisciplineRef `json:"discipline,omitempty"`
}

// AthleteRef is the athlete association on a record: usually an expanded
// object, sometimes just the display name as a bare string.
type AthleteRef struct {
	AthleteID int    `json:"athleteId"`
	Code      string `json:"code"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender,omitempty"`
	Team      Ref    `json:"team,omitempty"`
	Position  Ref    `json:"position,omitempty"`

	// Display holds the bare-string form; empty when the backend sent
	// the expanded object.
	Display string `json:"-"`
}

// UnmarshalJSON accepts the expanded object or a bare display string.
func (a *AthleteRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AthleteRef{Display: s}
		return nil
	}
	type plain AthleteRef
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = AthleteRef(v)
	return nil
}

// EventRef is the event association on a record. A bare string decodes
// into Name.
type EventRef struct {
	EventID  int       `json:"eventId"`
	Code     string    `json:"code,omitempty"`
	Name     string    `json:"name"`
	Location string    `json:"location,omitempty"`
	Status   string    `json:"status,omitempty"`
	Sport    *SportRef `json:"sport,omitempty"`
}

// UnmarshalJSON accepts the expanded object or a bare name string.
func (e *EventRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = EventRef{Name: s}
		return nil
	}
	type plain EventRef
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = EventRef(v)
	return nil
}

// SportRef is the expanded sport association on an event.
type SportRef struct {
	SportID     int    `json:"sportId"`
	Name        string `json:"name"`
	IsTeamSport bool   `json:"isTeamSport"`
}

// DisciplineRef is the discipline association on a record. A bare string
// decodes into Code.
type DisciplineRef struct {
	DisciplineID int    `json:"disciplineId"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	SportID      int    `json:"sportId,omitempty"`
}

// UnmarshalJSON accepts the expanded object or a bare code string.
func (d *DisciplineRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = DisciplineRef{Code: s}
		return nil
	}
	type plain DisciplineRef
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = DisciplineRef(v)
	return nil
}

// Ref is a relational field that the backend serializes inconsistently:
// sometimes a bare code string, sometimes an expanded object carrying a
// name. Both decode into the same display string.
type Ref struct {
	raw any
}

// UnmarshalJSON accepts null, a string, or an object.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.raw = v
	return nil
}

// MarshalJSON round-trips whatever representation arrived.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.raw == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.raw)
}

// Name resolves the reference to its display string. ok is false for
// null references and objects without a usable name.
func (r Ref) Name() (string, bool) {
	return DisplayName(r.raw)
}

// DisplayName resolves a decoded relational value to a display string.
// Strings pass through, objects yield their "name" field, everything else
// (nil, malformed objects, non-string names) resolves to not-ok. Never
// panics on malformed input.
func DisplayName(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case map[string]any:
		if name, ok := t["name"].(string); ok {
			return name, true
		}
		return "", false
	default:
		return "", false
	}
}
