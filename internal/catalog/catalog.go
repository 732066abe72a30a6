// Package catalog holds the static sport taxonomy: sport categories,
// discipline codes, team-code prefixes, and the enums the backend uses on
// the wire. Values mirror the backend's seed data and never change at
// runtime.
package catalog

// SportType is one of the five sport categories the dashboard manages.
type SportType string

const (
	Basketball SportType = "BASKETBALL"
	Football   SportType = "FOOTBALL"
	Athletics  SportType = "ATHLETICS"
	Wrestling  SportType = "WRESTLING"
	Boxing     SportType = "BOXING"

	// UnknownSport is the sentinel for codes outside the catalog.
	UnknownSport SportType = "UNKNOWN"
)

// SportTypes lists all real categories in backend sport-ID order.
var SportTypes = []SportType{Basketball, Football, Athletics, Wrestling, Boxing}

// Gender mirrors the backend gender enum.
type Gender string

const (
	Male   Gender = "MALE"
	Female Gender = "FEMALE"
	Other  Gender = "OTHER"
)

// EventStatus mirrors the backend event lifecycle enum.
type EventStatus string

const (
	StatusScheduled EventStatus = "SCHEDULED"
	StatusLive      EventStatus = "LIVE"
	StatusFinished  EventStatus = "FINISHED"
	StatusCanceled  EventStatus = "CANCELED"
)

// IsTeamSport reports whether athletes of this sport belong to a team and
// position rather than to individual disciplines.
func IsTeamSport(s SportType) bool {
	return s == Basketball || s == Football
}

// disciplineNames maps every catalogued discipline code to its display name.
var disciplineNames = map[string]string{
	// Athletics
	"100M":  "100 Meters",
	"200M":  "200 Meters",
	"400M":  "400 Meters",
	"800M":  "800 Meters",
	"1500M": "1500 Meters",
	"110H":  "110m Hurdles",
	"LJ":    "Long Jump",
	"HJ":    "High Jump",
	"SP":    "Shot Put",
	"JAV":   "Javelin",
	// Wrestling (freestyle weight classes)
	"57KG_FS": "57kg Freestyle",
	"61KG_FS": "61kg Freestyle",
	"65KG_FS": "65kg Freestyle",
	"70KG_FS": "70kg Freestyle",
	"74KG_FS": "74kg Freestyle",
	// Boxing weight classes
	"FLY": "Flyweight",
	"BAN": "Bantamweight",
	"FEA": "Featherweight",
	"LIG": "Lightweight",
	"WEL": "Welterweight",
}

// disciplineSports maps discipline codes to their sport category.
// Football and basketball are team sports keyed by team, not discipline,
// so they never appear here; callers fall back to the team's sport.
var disciplineSports = map[string]SportType{
	"100M": Athletics, "200M": Athletics, "400M": Athletics,
	"800M": Athletics, "1500M": Athletics, "110H": Athletics,
	"LJ": Athletics, "HJ": Athletics, "SP": Athletics, "JAV": Athletics,

	"57KG_FS": Wrestling, "61KG_FS": Wrestling, "65KG_FS": Wrestling,
	"70KG_FS": Wrestling, "74KG_FS": Wrestling,

	"FLY": Boxing, "BAN": Boxing, "FEA": Boxing, "LIG": Boxing, "WEL": Boxing,
}

// DisciplineName returns the display name for a discipline code, or the
// code itself when it is not in the catalog.
func DisciplineName(code string) string {
	if name, ok := disciplineNames[code]; ok {
		return name
	}
	return code
}

// SportForDiscipline maps a discipline code to its sport category using
// exact membership only. Unknown or empty codes yield UnknownSport.
func SportForDiscipline(code string) SportType {
	if s, ok := disciplineSports[code]; ok {
		return s
	}
	return UnknownSport
}

// DisciplineCodes returns the catalogued codes for one sport, in catalog
// order. Team sports have none.
func DisciplineCodes(s SportType) []string {
	switch s {
	case Athletics:
		return []string{"100M", "200M", "400M", "800M", "1500M", "110H", "LJ", "HJ", "SP", "JAV"}
	case Wrestling:
		return []string{"57KG_FS", "61KG_FS", "65KG_FS", "70KG_FS", "74KG_FS"}
	case Boxing:
		return []string{"FLY", "BAN", "FEA", "LIG", "WEL"}
	default:
		return nil
	}
}

// sportIDs mirrors the backend's numeric sport IDs.
var sportIDs = map[int]SportType{
	1: Basketball,
	2: Football,
	3: Athletics,
	4: Wrestling,
	5: Boxing,
}

// SportByID resolves a backend numeric sport ID. Unknown IDs yield
// UnknownSport.
func SportByID(id int) SportType {
	if s, ok := sportIDs[id]; ok {
		return s
	}
	return UnknownSport
}

// SportID is the inverse of SportByID. Unknown sports yield 0.
func SportID(s SportType) int {
	for id, st := range sportIDs {
		if st == s {
			return id
		}
	}
	return 0
}

// TeamCodePrefix returns the code prefix suggested for a new team of the
// given sport. Unknown sports get the generic "TM" prefix.
func TeamCodePrefix(s SportType) string {
	switch s {
	case Basketball:
		return "BB"
	case Football:
		return "FB"
	case Athletics:
		return "ATH"
	case Wrestling:
		return "WR"
	case Boxing:
		return "BX"
	default:
		return "TM"
	}
}
