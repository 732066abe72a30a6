package catalog

import "testing"

func TestSportForDiscipline(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want SportType
	}{
		{"100M", Athletics},
		{"1500M", Athletics},
		{"JAV", Athletics},
		{"57KG_FS", Wrestling},
		{"74KG_FS", Wrestling},
		{"FLY", Boxing},
		{"WEL", Boxing},
		{"unknown-code", UnknownSport},
		{"", UnknownSport},
		{"100m", UnknownSport}, // exact match only, no case folding
	}
	for _, c := range cases {
		if got := SportForDiscipline(c.code); got != c.want {
			t.Fatalf("SportForDiscipline(%q) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestDisciplineCodesCoverCatalog(t *testing.T) {
	t.Parallel()

	if n := len(DisciplineCodes(Athletics)); n != 10 {
		t.Fatalf("expected 10 athletics codes, got %d", n)
	}
	if n := len(DisciplineCodes(Wrestling)); n != 5 {
		t.Fatalf("expected 5 wrestling codes, got %d", n)
	}
	if n := len(DisciplineCodes(Boxing)); n != 5 {
		t.Fatalf("expected 5 boxing codes, got %d", n)
	}
	if DisciplineCodes(Basketball) != nil {
		t.Fatalf("team sports must have no discipline codes")
	}

	// Every listed code must map back to its sport.
	for _, sport := range []SportType{Athletics, Wrestling, Boxing} {
		for _, code := range DisciplineCodes(sport) {
			if got := SportForDiscipline(code); got != sport {
				t.Fatalf("code %q maps to %q, want %q", code, got, sport)
			}
		}
	}
}

func TestDisciplineName(t *testing.T) {
	t.Parallel()

	if got := DisciplineName("100M"); got != "100 Meters" {
		t.Fatalf("DisciplineName(100M) = %q", got)
	}
	if got := DisciplineName("FLY"); got != "Flyweight" {
		t.Fatalf("DisciplineName(FLY) = %q", got)
	}
	// Unlisted codes fall back to the raw code.
	if got := DisciplineName("XX99"); got != "XX99" {
		t.Fatalf("DisciplineName(XX99) = %q", got)
	}
}

func TestIsTeamSport(t *testing.T) {
	t.Parallel()

	for _, s := range []SportType{Basketball, Football} {
		if !IsTeamSport(s) {
			t.Fatalf("%s should be a team sport", s)
		}
	}
	for _, s := range []SportType{Athletics, Wrestling, Boxing, UnknownSport} {
		if IsTeamSport(s) {
			t.Fatalf("%s should not be a team sport", s)
		}
	}
}

func TestSportByIDAndPrefix(t *testing.T) {
	t.Parallel()

	if got := SportByID(1); got != Basketball {
		t.Fatalf("SportByID(1) = %q", got)
	}
	if got := SportByID(5); got != Boxing {
		t.Fatalf("SportByID(5) = %q", got)
	}
	if got := SportByID(99); got != UnknownSport {
		t.Fatalf("SportByID(99) = %q", got)
	}

	prefixes := map[SportType]string{
		Basketball:   "BB",
		Football:     "FB",
		Athletics:    "ATH",
		Wrestling:    "WR",
		Boxing:       "BX",
		UnknownSport: "TM",
	}
	for sport, want := range prefixes {
		if got := TeamCodePrefix(sport); got != want {
			t.Fatalf("TeamCodePrefix(%s) = %q, want %q", sport, got, want)
		}
	}
}
