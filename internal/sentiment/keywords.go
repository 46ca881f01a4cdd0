package sentiment

// Keyword categories used by the scorer. Weights are signed: positive
// categories push the score up, negative categories push it down. Injury
// terms are negative but tracked separately so confidence and fallback
// summaries can reason about them.
const (
	CategoryStrongPositive = "strong_positive"
	CategoryPositive       = "positive"
	CategoryStrongNegative = "strong_negative"
	CategoryNegative       = "negative"
	CategoryInjury         = "injury"
	CategoryPerformance    = "performance"
)

type keywordGroup struct {
	category string
	weight   float64
	words    []string
}

var keywordGroups = []keywordGroup{
	{
		category: CategoryStrongPositive,
		weight:   3,
		words: []string{
			"goat", "mvp", "legendary", "unstoppable", "dominant", "clutch",
			"phenomenal", "historic", "elite", "superstar", "masterclass",
			"career high", "unreal", "incredible",
		},
	},
	{
		category: CategoryPositive,
		weight:   1.5,
		words: []string{
			"great", "good", "solid", "impressive", "strong", "improved",
			"win", "winning", "hot streak", "breakout", "underrated",
			"efficient", "consistent", "balling", "cooking", "fire",
		},
	},
	{
		category: CategoryStrongNegative,
		weight:   -3,
		words: []string{
			"washed", "terrible", "awful", "bust", "trash", "benched",
			"suspended", "worst", "horrendous", "liability", "done",
		},
	},
	{
		category: CategoryNegative,
		weight:   -1.5,
		words: []string{
			"bad", "struggling", "slump", "overrated", "disappointing",
			"decline", "declining", "turnover", "loss", "losing",
			"inconsistent", "cold", "regression",
		},
	},
	{
		category: CategoryInjury,
		weight:   -2,
		words: []string{
			"injury", "injured", "hurt", "out indefinitely", "questionable",
			"doubtful", "acl", "hamstring", "concussion", "surgery",
			"day to day", "ir", "sidelined", "setback",
		},
	},
	{
		category: CategoryPerformance,
		weight:   1,
		words: []string{
			"points", "rebounds", "assists", "touchdowns", "yards", "goals",
			"saves", "home run", "strikeouts", "triple double",
			"double double", "hat trick", "shutout", "stats",
		},
	},
}

// recencyCues mark a post as describing something happening now; their
// presence amplifies the sentiment score.
var recencyCues = []string{
	"today", "tonight", "just", "breaking", "right now", "live",
	"this game", "currently",
}
