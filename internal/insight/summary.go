package insight

// Trajectory labels for a player's perceived momentum.
const (
	TrajectoryRising    = "rising"
	TrajectoryDeclining = "declining"
	TrajectorySteady    = "steady"
	TrajectorySleeper   = "sleeper"
)

// Recommendation labels.
const (
	RecommendationBuy   = "buy"
	RecommendationSell  = "sell"
	RecommendationHold  = "hold"
	RecommendationWatch = "watch"
)

// Summary is the structured intelligence result for one player. Numeric
// fields are always within bounds and enumerated fields always hold a
// known label, whether the summary came from the remote model or the
// local fallback.
type Summary struct {
	Player               string   `json:"player"`
	PerformanceScore     float64  `json:"performance_score"`     // [-10, 10]
	TrajectoryConfidence float64  `json:"trajectory_confidence"` // [0, 100]
	Sentiment            string   `json:"sentiment"`
	Trajectory           string   `json:"trajectory"`
	Recommendation       string   `json:"recommendation"`
	KeyThemes            []string `json:"key_themes"`
	SubredditsAnalyzed   []string `json:"subreddits_analyzed"`
	Source               string   `json:"source"` // "model" or "fallback"
}

var validTrajectories = map[string]bool{
	TrajectoryRising:    true,
	TrajectoryDeclining: true,
	TrajectorySteady:    true,
	TrajectorySleeper:   true,
}

var validRecommendations = map[string]bool{
	RecommendationBuy:   true,
	RecommendationSell:  true,
	RecommendationHold:  true,
	RecommendationWatch: true,
}

var validSentiments = map[string]bool{
	"very_positive": true,
	"positive":      true,
	"neutral":       true,
	"negative":      true,
	"very_negative": true,
}
