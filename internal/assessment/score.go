package assessment

import (
	"math"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
)

// MaxPointsPerQuestion is the top of the answer scale. Scores above it are
// accepted and can push the percentage past 100.
const MaxPointsPerQuestion = 4

// Score converts per-question points into a maturity percentage rounded to
// one decimal. An empty answer set scores 0.
func Score(points []float64) float64 {
	ceiling := float64(len(points) * MaxPointsPerQuestion)
	if ceiling <= 0 {
		return 0
	}
	var raw float64
	for _, p := range points {
		raw += p
	}
	return roundTo(raw/ceiling*100, 1)
}

// Points extracts the per-question scores from stored responses.
func Points(responses []domain.AssessmentResponse) []float64 {
	points := make([]float64, len(responses))
	for i, r := range responses {
		points[i] = r.Score
	}
	return points
}

// LevelFor maps a score to its maturity level. Each band includes its lower
// bound: 25.0 is Developing, 50.0 Intermediate, 75.0 Advanced.
func LevelFor(score float64) domain.MaturityLevel {
	switch {
	case score < 25:
		return domain.LevelBeginner
	case score < 50:
		return domain.LevelDeveloping
	case score < 75:
		return domain.LevelIntermediate
	default:
		return domain.LevelAdvanced
	}
}

// roundTo rounds a float to the given number of decimal places, halves to
// even. Values too large to scale are already whole and pass through.
func roundTo(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	scaled := val * pow
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return val
	}
	return math.RoundToEven(scaled) / pow
}
