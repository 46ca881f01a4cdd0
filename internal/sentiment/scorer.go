// Package sentiment implements a rule-based sentiment scorer for sports
// discussion text. It is pure and deterministic: no I/O, no randomness.
// It serves as the local fallback when the remote summarizer is
// unavailable or bypassed.
package sentiment

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Category buckets a score into one of five sentiment bins.
type Category string

const (
	VeryPositive Category = "very_positive"
	Positive     Category = "positive"
	Neutral      Category = "neutral"
	Negative     Category = "negative"
	VeryNegative Category = "very_negative"
)

// Impact tiers for individual signals, derived from keyword weight.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Signal records one keyword that matched the input.
type Signal struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Matches  int    `json:"matches"`
	Impact   string `json:"impact"`
}

// Result is the outcome of scoring one document.
type Result struct {
	Score      float64  `json:"score"`      // bounded to [-10, 10]
	Confidence float64  `json:"confidence"` // bounded to [0, 100]
	Category   Category `json:"category"`
	Signals    []Signal `json:"signals"`
	Context    string   `json:"context"`
}

var (
	wordPatterns   map[string]*regexp.Regexp
	wordPatternsMu sync.Mutex
)

// pattern returns a cached whole-word matcher for kw.
func pattern(kw string) *regexp.Regexp {
	wordPatternsMu.Lock()
	defer wordPatternsMu.Unlock()
	if wordPatterns == nil {
		wordPatterns = make(map[string]*regexp.Regexp)
	}
	re, ok := wordPatterns[kw]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		wordPatterns[kw] = re
	}
	return re
}

// Score evaluates the sentiment of a document. Title may be empty;
// engagementScore and commentCount feed the engagement boost and may be
// zero. Inputs shorter than 3 characters yield a neutral, zero-confidence
// result with no signal computation.
func Score(text, title string, engagementScore, commentCount int) Result {
	if len(strings.TrimSpace(text)) < 3 {
		return Result{Category: Neutral, Context: "insufficient text"}
	}

	combined := normalize(title + " " + text)

	var (
		weightedSum float64
		totalWeight float64
		signals     []Signal
		highCount   int
		perfHits    int
		injuryHits  int
	)

	for _, g := range keywordGroups {
		for _, kw := range g.words {
			n := len(pattern(kw).FindAllStringIndex(combined, -1))
			if n == 0 {
				continue
			}
			weightedSum += g.weight * float64(n)
			totalWeight += abs(g.weight) * float64(n)
			sig := Signal{Keyword: kw, Category: g.category, Matches: n, Impact: impact(g.weight)}
			signals = append(signals, sig)
			if sig.Impact == ImpactHigh {
				highCount++
			}
			switch g.category {
			case CategoryPerformance:
				perfHits += n
			case CategoryInjury:
				injuryHits += n
			}
		}
	}

	var contexts []string

	// Engagement boost: upvotes saturate at 1.5x, comments at 1.3x,
	// averaged so neither dominates.
	boost := engagementBoost(engagementScore, commentCount)
	if boost != 1 {
		weightedSum *= boost
		contexts = append(contexts, fmt.Sprintf("engagement boost %.2fx", boost))
	}

	if hasRecencyCue(combined) {
		weightedSum *= recencyMultiplier
		contexts = append(contexts, fmt.Sprintf("recency boost %.1fx", recencyMultiplier))
	}

	score := 0.0
	if totalWeight > 0 {
		score = clamp(weightedSum/totalWeight*10, -10, 10)
	}

	confidence := baseConfidence +
		float64(highCount)*highSignalBonus +
		float64(len(signals))*signalBonus +
		min(float64(len(text))/lengthDivisor, lengthBonusCap)
	if perfHits > 0 {
		confidence += performanceConfidenceAdj
	}
	if injuryHits > 0 {
		confidence -= injuryConfidenceAdj
	}
	confidence = clamp(confidence, 0, 100)

	return Result{
		Score:      score,
		Confidence: confidence,
		Category:   Categorize(score),
		Signals:    signals,
		Context:    strings.Join(contexts, ", "),
	}
}

const (
	recencyMultiplier = 1.2

	baseConfidence           = 20.0
	highSignalBonus          = 8.0
	signalBonus              = 3.0
	lengthDivisor            = 50.0
	lengthBonusCap           = 20.0
	performanceConfidenceAdj = 5.0
	injuryConfidenceAdj      = 5.0

	upvoteSaturation  = 1000.0
	commentSaturation = 200.0
)

// Categorize maps a bounded score into its sentiment bin.
func Categorize(score float64) Category {
	switch {
	case score >= 6:
		return VeryPositive
	case score >= 2:
		return Positive
	case score >= -2:
		return Neutral
	case score >= -6:
		return Negative
	default:
		return VeryNegative
	}
}

func engagementBoost(score, comments int) float64 {
	if score <= 0 && comments <= 0 {
		return 1
	}
	up := 1 + min(float64(score), upvoteSaturation)/upvoteSaturation*0.5
	cm := 1 + min(float64(comments), commentSaturation)/commentSaturation*0.3
	return (up + cm) / 2
}

func hasRecencyCue(s string) bool {
	for _, cue := range recencyCues {
		if pattern(cue).MatchString(s) {
			return true
		}
	}
	return false
}

var punct = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

func normalize(s string) string {
	return punct.ReplaceAllString(strings.ToLower(s), " ")
}

func impact(weight float64) string {
	switch w := abs(weight); {
	case w >= 3:
		return ImpactHigh
	case w >= 2:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
