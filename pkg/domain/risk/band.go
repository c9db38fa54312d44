package risk

// Category is the discrete risk band derived from a continuous score.
// Values are ordered so that a higher score never maps to a lower band.
type Category int

const (
	CategoryLow Category = iota
	CategoryMedium
	CategoryHigh
	CategoryCritical
)

// RiskBand pairs a category with its display label and color. Every
// surface that renders a score, gauge fill, text label, or list badge,
// goes through Band so the thresholds live in exactly one place.
type RiskBand struct {
	Category Category
	Label    string
	Color    string
}

// Band maps an overall risk score to its band. Thresholds are inclusive
// upper bounds; the function is total, so out-of-range scores still band
// (negative scores read as low, anything past 7 as critical).
func Band(score float64) RiskBand {
	switch {
	case score <= 3:
		return RiskBand{CategoryLow, "Low Risk", "#22c55e"}
	case score <= 5:
		return RiskBand{CategoryMedium, "Medium Risk", "#eab308"}
	case score <= 7:
		return RiskBand{CategoryHigh, "High Risk", "#f97316"}
	default:
		return RiskBand{CategoryCritical, "Critical Risk", "#ef4444"}
	}
}

// GaugeFill converts a score to a gauge fill fraction on the nominal
// [0, 10] scale, clamped to [0, 1]. Only the visual fill is clamped; the
// band itself always reflects the raw score.
func GaugeFill(score float64) float64 {
	f := score / 10
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
