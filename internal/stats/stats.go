// Package stats derives the dashboard overview numbers from bounded
// in-memory lists already fetched from the backend. Everything here is a
// pure projection: no persistence and no incremental maintenance, a fresh
// fetch recomputes everything.
package stats

import (
	"sort"
	"strconv"

	"github.com/athlonet/sportdesk/internal/backend"
	"github.com/athlonet/sportdesk/internal/catalog"
	"github.com/athlonet/sportdesk/internal/perf"
)

// Totals are the headline counters on the overview page.
type Totals struct {
	Athletes      int `json:"athletes"`
	Performances  int `json:"performances"`
	PersonalBests int `json:"personalBests"`
	ActiveSports  int `json:"activeSports"`
}

// SportCount is one slice of the athletes-by-sport distribution.
type SportCount struct {
	Sport catalog.SportType `json:"sport"`
	Count int               `json:"count"`
}

// AthleteRank is one row of the appearance ranking.
type AthleteRank struct {
	AthleteID   int    `json:"athleteId"`
	AthleteName string `json:"athleteName"`
	Appearances int    `json:"appearances"`
}

// GenderCount is one slice of the gender split.
type GenderCount struct {
	Gender catalog.Gender `json:"gender"`
	Count  int            `json:"count"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Compute derives Totals from the fetched lists. ActiveSports counts the
// distinct sports that the performances actually touch, not the catalog
// size.
func Compute(athletes []backend.Athlete, records []perf.Record) Totals {
	seen := map[catalog.SportType]bool{}
	bests := 0
	for i := range records {
		if records[i].IsPersonalBest {
			bests++
		}
		if s := perf.Sport(&records[i]); s != catalog.UnknownSport {
			seen[s] = true
		}
	}
	return Totals{
		Athletes:      len(athletes),
		Performances:  len(records),
		PersonalBests: bests,
		ActiveSports:  len(seen),
	}
}

// CountBySport groups performances by inferred sport category. Every real
// sport appears in the result, zero or not, in catalog order; records
// whose sport cannot be inferred are left out.
func CountBySport(records []perf.Record) []SportCount {
	counts := map[catalog.SportType]int{}
	for i := range records {
		if s := perf.Sport(&records[i]); s != catalog.UnknownSport {
			counts[s]++
		}
	}
	out := make([]SportCount, 0, len(catalog.SportTypes))
	for _, s := range catalog.SportTypes {
		out = append(out, SportCount{Sport: s, Count: counts[s]})
	}
	return out
}

// RankByAppearances orders athletes by how many performances they appear
// in, most first, athlete ID ascending on ties so the order is stable.
// Records without an athlete expansion still count under their athleteId.
func RankByAppearances(records []perf.Record, limit int) []AthleteRank {
	type acc struct {
		name  string
		count int
	}
	byID := map[int]*acc{}
	for i := range records {
		r := &records[i]
		id := r.AthleteID
		if id == 0 && r.Athlete != nil {
			id = r.Athlete.AthleteID
		}
		a, ok := byID[id]
		if !ok {
			a = &acc{name: "Unknown Athlete"}
			byID[id] = a
		}
		a.count++
		if r.Athlete != nil && (r.Athlete.FirstName != "" || r.Athlete.LastName != "") {
			name := r.Athlete.FirstName
			if r.Athlete.LastName != "" {
				if name != "" {
					name += " "
				}
				name += r.Athlete.LastName
			}
			a.name = name
		} else if r.Athlete != nil && r.Athlete.Display != "" {
			a.name = r.Athlete.Display
		}
	}

	out := make([]AthleteRank, 0, len(byID))
	for id, a := range byID {
		out = append(out, AthleteRank{AthleteID: id, AthleteName: a.name, Appearances: a.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Appearances != out[j].Appearances {
			return out[i].Appearances > out[j].Appearances
		}
		return out[i].AthleteID < out[j].AthleteID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GenderSplit counts athletes per gender, in enum order.
func GenderSplit(athletes []backend.Athlete) []GenderCount {
	counts := map[catalog.Gender]int{}
	for _, a := range athletes {
		counts[a.Gender]++
	}
	order := []catalog.Gender{catalog.Male, catalog.Female, catalog.Other}
	out := make([]GenderCount, 0, len(order))
	for _, g := range order {
		out = append(out, GenderCount{Gender: g, Count: counts[g]})
	}
	return out
}

// RecentActivity merges athlete registrations and recorded performances
// into one feed, newest first, capped at limit. Date strings are the
// backend's ISO format, so lexicographic order is chronological order.
func RecentActivity(athletes []backend.Athlete, records []perf.Record, limit int) []Activity {
	items := make([]Activity, 0, len(athletes)+len(records))
	for _, a := range athletes {
		items = append(items, Activity{
			ID:          "athlete-" + a.Code,
			Title:       a.FirstName + " " + a.LastName,
			Description: "New athlete registered",
			Date:        firstNonEmpty(a.CreatedAt, a.DateOfBirth),
		})
	}
	for i := range records {
		s := perf.Summarize(&records[i])
		desc := s.Discipline
		if s.EventName != "Unknown Event" {
			desc += " • " + s.EventName
		}
		items = append(items, Activity{
			ID:          "performance-" + strconv.Itoa(s.ID),
			Title:       s.AthleteName,
			Description: desc + " recorded",
			Date:        firstNonEmpty(s.Date, records[i].CreatedAt),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date > items[j].Date })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
