package perf

import "github.com/athlonet/sportdesk/internal/catalog"

// Kind tags which sport-specific field group a record carries.
type Kind string

const (
	KindTrack      Kind = "track"
	KindBasketball Kind = "basketball"
	KindFootball   Kind = "football"
	KindWrestling  Kind = "wrestling"
	KindBoxing     Kind = "boxing"
	KindPoints     Kind = "points"
	KindUnknown    Kind = "unknown"
)

// Variant is the tagged form of a record's sport-specific payload. Exactly
// the fields of the matching group are carried; formatting switches on
// Kind exhaustively instead of re-probing optional fields.
type Variant struct {
	Kind Kind

	// track
	Time     *float64
	Distance *float64
	Height   *float64

	// basketball
	Rebounds *int
	Assists  *int

	// football
	GoalsScored   *int
	MinutesPlayed *int

	// points (also set for basketball, where it renders as "N PTS")
	Points *float64
}

// Classify translates the union-by-optional-fields record into a tagged
// variant. Group checks run in display precedence order; a record with
// fields from several groups (which the backend should never produce)
// resolves to the first matching group.
func Classify(r *Record) Variant {
	if r == nil {
		return Variant{Kind: KindUnknown}
	}

	if r.Time != nil || r.Distance != nil || r.Height != nil {
		return Variant{Kind: KindTrack, Time: r.Time, Distance: r.Distance, Height: r.Height}
	}
	if hasBasketballFields(r) {
		return Variant{Kind: KindBasketball, Points: r.Points, Rebounds: r.Rebounds, Assists: r.Assists}
	}
	if hasFootballFields(r) {
		return Variant{Kind: KindFootball, GoalsScored: r.GoalsScored, Assists: r.Assists, MinutesPlayed: r.MinutesPlayed}
	}
	if r.Assists != nil {
		// assists is the one field both team sports share. With no
		// unshared field to disambiguate, it reads as basketball.
		return Variant{Kind: KindBasketball, Points: r.Points, Assists: r.Assists}
	}
	if r.Wins != nil || r.Losses != nil || r.Pins != nil || r.TechnicalFalls != nil || r.Decisions != nil {
		return Variant{Kind: KindWrestling}
	}
	if r.Rounds != nil || r.Knockouts != nil || r.Knockdowns != nil || r.PunchesLanded != nil || r.PunchesThrown != nil {
		return Variant{Kind: KindBoxing}
	}
	if r.Points != nil {
		return Variant{Kind: KindPoints, Points: r.Points}
	}
	return Variant{Kind: KindUnknown}
}

func hasBasketballFields(r *Record) bool {
	// Only fields football never carries; shared assists is resolved
	// after both group probes.
	return r.TwoPoints != nil || r.ThreePoints != nil || r.FreeThrows != nil ||
		r.FieldGoals != nil || r.Rebounds != nil || r.Steals != nil ||
		r.Blocks != nil || r.Turnovers != nil
}

func hasFootballFields(r *Record) bool {
	return r.GoalsScored != nil || r.GoalsConceded != nil || r.MinutesPlayed != nil ||
		r.YellowCards != nil || r.RedCards != nil || r.Saves != nil
}

// Sport infers the record's sport category: explicit discipline first,
// then the event's sport expansion, and finally the shape of the stat
// fields themselves. List payloads often carry neither expansion, so a
// bare basketball stat line still counts as basketball.
func Sport(r *Record) catalog.SportType {
	if r == nil {
		return catalog.UnknownSport
	}
	if r.Discipline != nil {
		if s := catalog.SportForDiscipline(r.Discipline.Code); s != catalog.UnknownSport {
			return s
		}
	}
	if r.Event != nil && r.Event.Sport != nil {
		switch catalog.SportType(r.Event.Sport.Name) {
		case catalog.Basketball:
			return catalog.Basketball
		case catalog.Football:
			return catalog.Football
		case catalog.Athletics:
			return catalog.Athletics
		case catalog.Wrestling:
			return catalog.Wrestling
		case catalog.Boxing:
			return catalog.Boxing
		}
	}
	switch Classify(r).Kind {
	case KindTrack:
		return catalog.Athletics
	case KindBasketball:
		return catalog.Basketball
	case KindFootball:
		return catalog.Football
	case KindWrestling:
		return catalog.Wrestling
	case KindBoxing:
		return catalog.Boxing
	}
	return catalog.UnknownSport
}
