package perf

import (
	"strconv"
	"strings"
)

// Placeholder is rendered when a record carries no formattable result.
// Wrestling and boxing records always render it: the dashboard never had a
// result-string rule for those groups, and inventing one here would show
// numbers the backend never vouched for.
const Placeholder = "—"

// FormatResult renders a record's primary result string. It is total and
// deterministic: any input, including nil, yields a string and never an
// error. Missing numeric fields are absent, not zero.
func FormatResult(r *Record) string {
	return Classify(r).Format()
}

// Format renders the variant's result string.
func (v Variant) Format() string {
	switch v.Kind {
	case KindTrack:
		// One record never mixes time/distance/height in practice;
		// time wins if it does.
		if v.Time != nil {
			return formatFloat(*v.Time) + "s"
		}
		if v.Distance != nil {
			return formatFloat(*v.Distance) + "m"
		}
		return formatFloat(*v.Height) + "m"
	case KindPoints:
		return formatFloat(*v.Points) + " pts"
	case KindBasketball:
		var parts []string
		if v.Points != nil {
			parts = append(parts, formatFloat(*v.Points)+" PTS")
		}
		if v.Rebounds != nil {
			parts = append(parts, strconv.Itoa(*v.Rebounds)+" REB")
		}
		if v.Assists != nil {
			parts = append(parts, strconv.Itoa(*v.Assists)+" AST")
		}
		return joinOrPlaceholder(parts)
	case KindFootball:
		var parts []string
		if v.GoalsScored != nil {
			parts = append(parts, strconv.Itoa(*v.GoalsScored)+" G")
		}
		if v.Assists != nil {
			parts = append(parts, strconv.Itoa(*v.Assists)+" A")
		}
		if v.MinutesPlayed != nil {
			parts = append(parts, strconv.Itoa(*v.MinutesPlayed)+"'")
		}
		return joinOrPlaceholder(parts)
	case KindWrestling, KindBoxing:
		return Placeholder
	default:
		return Placeholder
	}
}

func joinOrPlaceholder(parts []string) string {
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, " · ")
}

// formatFloat renders a stat value without trailing zeros: 10.5 → "10.5",
// 100 → "100".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// BestLabel renders the personal/season best badge text, or "" when the
// record is neither.
func BestLabel(r *Record) string {
	switch {
	case r == nil:
		return ""
	case r.IsPersonalBest && r.IsSeasonBest:
		return "PB & SB"
	case r.IsPersonalBest:
		return "PB"
	case r.IsSeasonBest:
		return "SB"
	default:
		return ""
	}
}
