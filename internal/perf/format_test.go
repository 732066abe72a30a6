package perf

import "testing"

func fptr(f float64) *float64 { return &f }
func iptr(n int) *int         { return &n }

func TestFormatResult_SingleFieldRecords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  Record
		want string
	}{
		{"time", Record{Time: fptr(10.5)}, "10.5s"},
		{"distance", Record{Distance: fptr(100)}, "100m"},
		{"height", Record{Height: fptr(2.31)}, "2.31m"},
		{"points", Record{Points: fptr(87.5)}, "87.5 pts"},
		{"whole points", Record{Points: fptr(12)}, "12 pts"},
	}
	for _, c := range cases {
		if got := FormatResult(&c.rec); got != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestFormatResult_TrackPrecedence(t *testing.T) {
	t.Parallel()

	// time beats distance beats height when the backend ever sends more
	// than one.
	rec := Record{Time: fptr(9.58), Distance: fptr(100)}
	if got := FormatResult(&rec); got != "9.58s" {
		t.Fatalf("got %q, want 9.58s", got)
	}
	rec = Record{Distance: fptr(8.95), Height: fptr(2)}
	if got := FormatResult(&rec); got != "8.95m" {
		t.Fatalf("got %q, want 8.95m", got)
	}
}

func TestFormatResult_Basketball(t *testing.T) {
	t.Parallel()

	rec := Record{Points: fptr(20), Rebounds: iptr(10), Assists: iptr(5)}
	if got := FormatResult(&rec); got != "20 PTS · 10 REB · 5 AST" {
		t.Fatalf("got %q", got)
	}

	// Partial stat lines keep the fixed order and drop absent parts.
	rec = Record{Points: fptr(31), Rebounds: iptr(4), Steals: iptr(2)}
	if got := FormatResult(&rec); got != "31 PTS · 4 REB" {
		t.Fatalf("got %q", got)
	}

	// A basketball-group field with none of the three display stats still
	// marks the record as basketball but renders the placeholder.
	rec = Record{Blocks: iptr(3)}
	if got := FormatResult(&rec); got != Placeholder {
		t.Fatalf("got %q, want placeholder", got)
	}
}

func TestFormatResult_Football(t *testing.T) {
	t.Parallel()

	rec := Record{GoalsScored: iptr(2), Assists: iptr(1), MinutesPlayed: iptr(90)}
	// assists alone would classify as basketball, but a football-specific
	// field keeps the whole record in the football group.
	if got := FormatResult(&rec); got != "2 G · 1 A · 90'" {
		t.Fatalf("got %q", got)
	}

	rec = Record{MinutesPlayed: iptr(73)}
	if got := FormatResult(&rec); got != "73'" {
		t.Fatalf("got %q", got)
	}

	rec = Record{YellowCards: iptr(1), Saves: iptr(6)}
	if got := FormatResult(&rec); got != Placeholder {
		t.Fatalf("got %q, want placeholder", got)
	}
}

func TestFormatResult_WrestlingAndBoxingRenderPlaceholder(t *testing.T) {
	t.Parallel()

	wrestling := Record{Wins: iptr(3), Pins: iptr(2)}
	if got := FormatResult(&wrestling); got != Placeholder {
		t.Fatalf("wrestling: got %q", got)
	}

	boxing := Record{Rounds: iptr(12), Knockouts: iptr(1)}
	if got := FormatResult(&boxing); got != Placeholder {
		t.Fatalf("boxing: got %q", got)
	}
}

func TestFormatResult_EmptyAndNil(t *testing.T) {
	t.Parallel()

	if got := FormatResult(&Record{}); got != Placeholder {
		t.Fatalf("empty record: got %q", got)
	}
	if got := FormatResult(&Record{Position: iptr(1), IsPersonalBest: true}); got != Placeholder {
		t.Fatalf("rank-only record: got %q", got)
	}
	if got := FormatResult(nil); got != Placeholder {
		t.Fatalf("nil record: got %q", got)
	}
}

func TestBestLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pb, sb bool
		want   string
	}{
		{true, true, "PB & SB"},
		{true, false, "PB"},
		{false, true, "SB"},
		{false, false, ""},
	}
	for _, c := range cases {
		rec := Record{IsPersonalBest: c.pb, IsSeasonBest: c.sb}
		if got := BestLabel(&rec); got != c.want {
			t.Fatalf("pb=%v sb=%v: got %q, want %q", c.pb, c.sb, got, c.want)
		}
	}
	if got := BestLabel(nil); got != "" {
		t.Fatalf("nil record: got %q", got)
	}
}
