package sentiment

import "sort"

// SignalCount is one merged signal across a corpus.
type SignalCount struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Matches  int    `json:"matches"`
}

// AggregateResult summarizes sentiment over a corpus of scored documents.
type AggregateResult struct {
	Score      float64       `json:"score"` // confidence-weighted mean
	Positive   int           `json:"positive"`
	Negative   int           `json:"negative"`
	Neutral    int           `json:"neutral"`
	TopSignals []SignalCount `json:"top_signals"`
}

// Aggregate combines per-document results into a corpus summary: a
// confidence-weighted mean score, bucket counts using ±1 thresholds on
// individual scores, and the top 10 signals merged by (keyword, category)
// with summed match counts.
func Aggregate(results []Result) AggregateResult {
	var agg AggregateResult
	if len(results) == 0 {
		return agg
	}

	var weighted, totalConf float64
	merged := make(map[[2]string]int)
	for _, r := range results {
		weighted += r.Score * r.Confidence
		totalConf += r.Confidence
		switch {
		case r.Score > 1:
			agg.Positive++
		case r.Score < -1:
			agg.Negative++
		default:
			agg.Neutral++
		}
		for _, s := range r.Signals {
			merged[[2]string{s.Keyword, s.Category}] += s.Matches
		}
	}
	if totalConf > 0 {
		agg.Score = weighted / totalConf
	}

	for k, n := range merged {
		agg.TopSignals = append(agg.TopSignals, SignalCount{Keyword: k[0], Category: k[1], Matches: n})
	}
	sort.Slice(agg.TopSignals, func(i, j int) bool {
		if agg.TopSignals[i].Matches != agg.TopSignals[j].Matches {
			return agg.TopSignals[i].Matches > agg.TopSignals[j].Matches
		}
		return agg.TopSignals[i].Keyword < agg.TopSignals[j].Keyword
	})
	if len(agg.TopSignals) > 10 {
		agg.TopSignals = agg.TopSignals[:10]
	}
	return agg
}
