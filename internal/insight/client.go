// Package insight produces structured player summaries. The heavy lifting
// is delegated to a remote language model endpoint; this package owns the
// contract around it: request shaping, response validation and clamping,
// and a rule-based local fallback so callers always receive a summary.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/qepting91/fanpulse/internal/domain"
	"github.com/qepting91/fanpulse/internal/metrics"
	"github.com/qepting91/fanpulse/internal/sentiment"
)

// Config points the client at the summarization endpoint. An empty
// Endpoint disables remote calls entirely; every summary is synthesized
// locally.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client consumes the remote summarization contract.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
	metrics    metrics.Recorder
}

func NewClient(cfg Config, logger *slog.Logger, rec metrics.Recorder) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		metrics:    rec,
	}
}

type summarizeItem struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Community string `json:"community"`
}

type summarizeRequest struct {
	Player string          `json:"player"`
	Items  []summarizeItem `json:"items"`
}

type summarizeResponse struct {
	PerformanceScore     float64  `json:"performance_score"`
	TrajectoryConfidence float64  `json:"trajectory_confidence"`
	Sentiment            string   `json:"sentiment"`
	Trajectory           string   `json:"trajectory"`
	Recommendation       string   `json:"recommendation"`
	KeyThemes            []string `json:"key_themes"`
}

// Summarize returns a summary for the player's discussion corpus. Remote
// failures of any kind (network, status, malformed JSON) are recoverable:
// the caller always gets a summary, falling back to the local rule-based
// one. An empty corpus never reaches the remote endpoint.
func (c *Client) Summarize(ctx context.Context, player string, posts []domain.Post) Summary {
	if len(posts) == 0 {
		return emptySummary(player)
	}
	if c.cfg.Endpoint == "" {
		c.metrics.RecordSummaryFallback()
		return c.fallback(player, posts)
	}

	summary, err := c.callRemote(ctx, player, posts)
	if err != nil {
		c.logger.Warn("remote summarization failed, using fallback", "player", player, "err", err)
		c.metrics.RecordSummaryFallback()
		return c.fallback(player, posts)
	}
	return summary
}

func (c *Client) callRemote(ctx context.Context, player string, posts []domain.Post) (Summary, error) {
	items := make([]summarizeItem, len(posts))
	for i, p := range posts {
		items[i] = summarizeItem{Title: p.Title, Content: p.Body, Community: p.Subreddit}
	}
	body, err := json.Marshal(summarizeRequest{Player: player, Items: items})
	if err != nil {
		return Summary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Summary{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Summary{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Summary{}, fmt.Errorf("summarizer status: %d", resp.StatusCode)
	}

	var parsed summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Summary{}, fmt.Errorf("malformed summarizer reply: %w", err)
	}

	// Never trust remote numbers or labels: clamp and default everything.
	return Summary{
		Player:               player,
		PerformanceScore:     clamp(parsed.PerformanceScore, -10, 10),
		TrajectoryConfidence: clamp(parsed.TrajectoryConfidence, 0, 100),
		Sentiment:            orDefault(strings.ToLower(parsed.Sentiment), validSentiments, "neutral"),
		Trajectory:           orDefault(strings.ToLower(parsed.Trajectory), validTrajectories, TrajectorySteady),
		Recommendation:       orDefault(strings.ToLower(parsed.Recommendation), validRecommendations, RecommendationHold),
		KeyThemes:            parsed.KeyThemes,
		SubredditsAnalyzed:   subredditsOf(posts),
		Source:               "model",
	}, nil
}

// fallback synthesizes a summary from keyword sentiment alone.
func (c *Client) fallback(player string, posts []domain.Post) Summary {
	results := make([]sentiment.Result, len(posts))
	for i, p := range posts {
		results[i] = sentiment.Score(p.Body, p.Title, p.Score, p.CommentCount)
	}
	agg := sentiment.Aggregate(results)

	trajectory := TrajectorySteady
	switch {
	case agg.Score >= 2:
		trajectory = TrajectoryRising
	case agg.Score <= -2:
		trajectory = TrajectoryDeclining
	case agg.Positive > 0 && agg.Positive > 2*agg.Negative && agg.Score < 2:
		trajectory = TrajectorySleeper
	}

	recommendation := RecommendationHold
	switch {
	case agg.Score >= 3:
		recommendation = RecommendationBuy
	case agg.Score <= -3:
		recommendation = RecommendationSell
	case trajectory == TrajectorySleeper:
		recommendation = RecommendationWatch
	}

	themes := make([]string, 0, len(agg.TopSignals))
	for _, s := range agg.TopSignals {
		themes = append(themes, s.Keyword)
	}

	confidence := 0.0
	for _, r := range results {
		confidence += r.Confidence
	}
	confidence = clamp(confidence/float64(len(results)), 0, 100)

	return Summary{
		Player:               player,
		PerformanceScore:     clamp(agg.Score, -10, 10),
		TrajectoryConfidence: confidence,
		Sentiment:            string(sentiment.Categorize(agg.Score)),
		Trajectory:           trajectory,
		Recommendation:       recommendation,
		KeyThemes:            themes,
		SubredditsAnalyzed:   subredditsOf(posts),
		Source:               "fallback",
	}
}

// emptySummary is the zero-corpus result: neutral, zero scores, nothing
// analyzed.
func emptySummary(player string) Summary {
	return Summary{
		Player:             player,
		Sentiment:          "neutral",
		Trajectory:         TrajectorySteady,
		Recommendation:     RecommendationHold,
		KeyThemes:          []string{},
		SubredditsAnalyzed: []string{},
		Source:             "fallback",
	}
}

func subredditsOf(posts []domain.Post) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		if _, ok := seen[p.Subreddit]; ok {
			continue
		}
		seen[p.Subreddit] = struct{}{}
		out = append(out, p.Subreddit)
	}
	sort.Strings(out)
	return out
}

func orDefault(v string, valid map[string]bool, def string) string {
	if valid[v] {
		return v
	}
	return def
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
