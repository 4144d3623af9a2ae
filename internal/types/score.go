package types

// Score dimension names used as breakdown keys. The "total" entry mirrors
// TotalScore so presentation callers can render the breakdown standalone.
const (
	DimensionPersona          = "persona"
	DimensionKeyInsight       = "key_insight"
	DimensionValueProposition = "value_proposition"
	DimensionProofPoints      = "proof_points"
	DimensionStrategicAngle   = "strategic_angle"
	DimensionSources          = "sources"
	DimensionTotal            = "total"
)

// ScoreResult is the output of the campaign scorer: a 0-100 total plus the
// per-dimension point breakdown it was derived from.
type ScoreResult struct {
	TotalScore int            `json:"total_score"`
	Breakdown  map[string]int `json:"breakdown"`
}

// Label buckets the total score into the quality band shown to users.
func (r *ScoreResult) Label() string {
	switch {
	case r.TotalScore >= 80:
		return "Excellent"
	case r.TotalScore >= 60:
		return "Good"
	case r.TotalScore >= 40:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}

// ScoreConfig carries the request-level context the rubric evaluates against.
type ScoreConfig struct {
	Persona  string `json:"persona"`
	Industry string `json:"industry"`
}
