package perf

// Summary is the flat display projection of a record that the dashboard
// pages render: best-effort everywhere, placeholders instead of errors.
type Summary struct {
	ID             int    `json:"id"`
	AthleteName    string `json:"athleteName"`
	EventName      string `json:"eventName"`
	Discipline     string `json:"discipline"`
	Result         string `json:"result"`
	Date           string `json:"date"`
	Venue          string `json:"venue,omitempty"`
	Rank           *int   `json:"rank,omitempty"`
	IsPersonalBest bool   `json:"isPersonalBest"`
	IsSeasonBest   bool   `json:"isSeasonBest"`
	BestLabel      string `json:"bestLabel,omitempty"`
}

// Summarize flattens a record plus its optional expansions into a Summary.
// Missing expansions degrade to "Unknown ..." labels, never to an error.
func Summarize(r *Record) Summary {
	if r == nil {
		return Summary{AthleteName: "Unknown Athlete", EventName: "Unknown Event", Discipline: "Performance", Result: Placeholder}
	}

	s := Summary{
		ID:             r.PerformanceID,
		AthleteName:    athleteName(r.Athlete),
		EventName:      "Unknown Event",
		Discipline:     disciplineLabel(r),
		Result:         FormatResult(r),
		Date:           r.Date,
		Rank:           r.Position,
		IsPersonalBest: r.IsPersonalBest,
		IsSeasonBest:   r.IsSeasonBest,
		BestLabel:      BestLabel(r),
	}
	if r.Event != nil {
		if r.Event.Name != "" {
			s.EventName = r.Event.Name
		}
		s.Venue = r.Event.Location
	}
	return s
}

// SummarizeAll maps records to summaries, preserving order. A nil or empty
// input yields an empty non-nil slice so callers always render a list.
func SummarizeAll(records []Record) []Summary {
	out := make([]Summary, 0, len(records))
	for i := range records {
		out = append(out, Summarize(&records[i]))
	}
	return out
}

func athleteName(a *AthleteRef) string {
	if a == nil {
		return "Unknown Athlete"
	}
	if a.Display != "" {
		return a.Display
	}
	if a.FirstName == "" && a.LastName == "" {
		return "Unknown Athlete"
	}
	name := a.FirstName
	if a.LastName != "" {
		if name != "" {
			name += " "
		}
		name += a.LastName
	}
	if a.Code != "" {
		name += " (" + a.Code + ")"
	}
	return name
}

// disciplineLabel prefers the expanded discipline name; team-sport records
// have none, so they fall back to the event's sport name, then to a
// generic label.
func disciplineLabel(r *Record) string {
	if r.Discipline != nil && r.Discipline.Name != "" {
		return r.Discipline.Name
	}
	if r.Event != nil && r.Event.Sport != nil && r.Event.Sport.IsTeamSport && r.Event.Sport.Name != "" {
		return r.Event.Sport.Name
	}
	return "Performance"
}
