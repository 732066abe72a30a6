// Package codegen produces human-friendly random entity codes suggested to
// the backend on creation. Randomness is non-cryptographic on purpose: the
// codes are default suggestions, and the backend stays the authority on
// uniqueness via its duplicate-code conflict response.
package codegen

import (
	"math/rand"
	"strings"

	"github.com/athlonet/sportdesk/internal/catalog"
)

// Generate returns prefix followed by digitCount random decimal digits.
// The first digit is never zero so the numeric part keeps its width when
// read as a number, matching the backend's existing codes.
func Generate(prefix string, digitCount int) string {
	if digitCount <= 0 {
		return prefix
	}
	var b strings.Builder
	b.Grow(len(prefix) + digitCount)
	b.WriteString(prefix)
	b.WriteByte(byte('1' + rand.Intn(9)))
	for i := 1; i < digitCount; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// AthleteCode suggests a code for a new athlete: "ATH" + 8 digits.
func AthleteCode() string {
	return Generate("ATH", 8)
}

// EventCode suggests a code for a new event: "EVT" + 5 digits.
func EventCode() string {
	return Generate("EVT", 5)
}

// TeamCode suggests a code for a new team: sport prefix + 5 digits.
func TeamCode(sport catalog.SportType) string {
	return Generate(catalog.TeamCodePrefix(sport), 5)
}
