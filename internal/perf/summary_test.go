package perf

import "testing"

func TestSummarize_FullyExpandedRecord(t *testing.T) {
	t.Parallel()

	rec := Record{
		PerformanceID: 41,
		Date:          "2026-06-14",
		Position:      iptr(2),
		Time:          fptr(10.82),
		IsPersonalBest: true,
		Athlete: &AthleteRef{
			AthleteID: 7, Code: "ATH00000007",
			FirstName: "Mia", LastName: "Kovac",
		},
		Event:      &EventRef{EventID: 3, Name: "National Championship", Location: "Olympic Stadium"},
		Discipline: &DisciplineRef{DisciplineID: 1, Code: "100M", Name: "100 Meters"},
	}

	s := Summarize(&rec)
	if s.ID != 41 {
		t.Fatalf("id = %d", s.ID)
	}
	if s.AthleteName != "Mia Kovac (ATH00000007)" {
		t.Fatalf("athlete name = %q", s.AthleteName)
	}
	if s.EventName != "National Championship" {
		t.Fatalf("event name = %q", s.EventName)
	}
	if s.Discipline != "100 Meters" {
		t.Fatalf("discipline = %q", s.Discipline)
	}
	if s.Result != "10.82s" {
		t.Fatalf("result = %q", s.Result)
	}
	if s.Venue != "Olympic Stadium" {
		t.Fatalf("venue = %q", s.Venue)
	}
	if s.Rank == nil || *s.Rank != 2 {
		t.Fatalf("rank = %v", s.Rank)
	}
	if s.BestLabel != "PB" {
		t.Fatalf("best label = %q", s.BestLabel)
	}
}

func TestSummarize_MissingExpansionsDegrade(t *testing.T) {
	t.Parallel()

	rec := Record{PerformanceID: 9, Date: "2026-02-01"}
	s := Summarize(&rec)
	if s.AthleteName != "Unknown Athlete" {
		t.Fatalf("athlete name = %q", s.AthleteName)
	}
	if s.EventName != "Unknown Event" {
		t.Fatalf("event name = %q", s.EventName)
	}
	if s.Discipline != "Performance" {
		t.Fatalf("discipline = %q", s.Discipline)
	}
	if s.Result != Placeholder {
		t.Fatalf("result = %q", s.Result)
	}
}

func TestSummarize_TeamSportFallsBackToEventSport(t *testing.T) {
	t.Parallel()

	rec := Record{
		PerformanceID: 12,
		Points:        fptr(20),
		Rebounds:      iptr(10),
		Assists:       iptr(5),
		Event: &EventRef{
			Name:  "Playoff Game 3",
			Sport: &SportRef{SportID: 1, Name: "BASKETBALL", IsTeamSport: true},
		},
	}
	s := Summarize(&rec)
	if s.Discipline != "BASKETBALL" {
		t.Fatalf("discipline = %q", s.Discipline)
	}
	if s.Result != "20 PTS · 10 REB · 5 AST" {
		t.Fatalf("result = %q", s.Result)
	}
}

func TestSummarizeAll_EmptyInputYieldsEmptyList(t *testing.T) {
	t.Parallel()

	out := SummarizeAll(nil)
	if out == nil {
		t.Fatalf("expected a non-nil empty slice")
	}
	if len(out) != 0 {
		t.Fatalf("expected no summaries, got %d", len(out))
	}
}
