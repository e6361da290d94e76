package source

import "github.com/hbollon/go-edlib"

// MatchConfidence buckets a similarity score.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Similarity is the Jaro-Winkler similarity (0.0-1.0) of two titles after
// NormalizeForMatch. Jaro-Winkler favours shared prefixes, which suits titles.
func Similarity(a, b string) float64 {
	na, nb := NormalizeForMatch(a), NormalizeForMatch(b)
	if na == "" || nb == "" {
		return 0
	}
	return float64(edlib.JaroWinklerSimilarity(na, nb))
}

// Confidence maps a similarity score onto a MatchConfidence.
func Confidence(score float64) MatchConfidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}
