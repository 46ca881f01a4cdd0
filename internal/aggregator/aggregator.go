// Package aggregator orchestrates player mention searches across multiple
// subreddits: discovery, bounded concurrent fan-out, relevance filtering,
// dedup, multi-key sorting, comment enrichment, and TTL caching.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/qepting91/fanpulse/internal/cache"
	"github.com/qepting91/fanpulse/internal/collector"
	"github.com/qepting91/fanpulse/internal/discovery"
	"github.com/qepting91/fanpulse/internal/domain"
	"github.com/qepting91/fanpulse/internal/metrics"
)

// Config tunes the aggregation pipeline. Zero values take defaults.
type Config struct {
	MaxSubreddits       int           // cap on communities searched per query
	TotalPosts          int           // desired post count across all communities
	QuotaBuffer         int           // extra posts requested per community
	PostsPerPage        int           // page size downstream; bounds comment enrichment
	TopPostsForComments int           // posts enriched with comments
	CommentBudget       int           // total comments fetched across enriched posts
	MinPosts            int           // below this, coverage is logged as sparse
	SearchTimeout       time.Duration // per-community search deadline
	CommentTimeout      time.Duration // per-post comment fetch deadline
	CacheTTL            time.Duration
}

func (c *Config) applyDefaults() {
	if c.MaxSubreddits <= 0 {
		c.MaxSubreddits = 15
	}
	if c.TotalPosts <= 0 {
		c.TotalPosts = 30
	}
	if c.QuotaBuffer <= 0 {
		c.QuotaBuffer = 2
	}
	if c.PostsPerPage <= 0 {
		c.PostsPerPage = 10
	}
	if c.TopPostsForComments <= 0 {
		c.TopPostsForComments = 5
	}
	if c.CommentBudget <= 0 {
		c.CommentBudget = 15
	}
	if c.MinPosts <= 0 {
		c.MinPosts = 5
	}
	if c.SearchTimeout <= 0 {
		c.SearchTimeout = 4 * time.Second
	}
	if c.CommentTimeout <= 0 {
		c.CommentTimeout = 2 * time.Second
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 10 * time.Minute
	}
}

// engagementNoiseBand is the minimum engagement gap treated as a real
// difference when sorting; smaller gaps fall through to recency.
const engagementNoiseBand = 5.0

// Service is the aggregation pipeline. Construct once and share.
type Service struct {
	collector domain.Collector
	cfg       Config
	cache     *cache.Cache[domain.SearchResult]
	logger    *slog.Logger
	metrics   metrics.Recorder
}

// NewService builds the aggregation service. A nil logger defaults to
// slog.Default; a nil recorder discards metrics; a nil now defaults to
// time.Now and only matters for cache-expiry tests.
func NewService(col domain.Collector, cfg Config, logger *slog.Logger, rec metrics.Recorder, now func() time.Time) *Service {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{
		collector: col,
		cfg:       cfg,
		cache:     cache.New[domain.SearchResult](now),
		logger:    logger,
		metrics:   rec,
	}
}

// SearchPlayerMentions returns the aggregated discussion set for a player.
// The optional record supplies sport and team for discovery and sorting.
// Results are cached per lowercase player name; a cached entry short-
// circuits all network calls. Per-community failures degrade to empty
// results; only an auth failure propagates as an error.
func (s *Service) SearchPlayerMentions(ctx context.Context, playerName string, record *domain.Player) (domain.SearchResult, error) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		return domain.SearchResult{}, errors.New("player name is required")
	}
	key := strings.ToLower(name) + ":mentions"

	if res, ok := s.cache.Get(key); ok {
		s.metrics.RecordCacheHit()
		return res, nil
	}
	s.metrics.RecordCacheMiss()

	return s.cache.GetOrFill(ctx, key, s.cfg.CacheTTL, func(ctx context.Context) (domain.SearchResult, error) {
		return s.search(ctx, name, record)
	})
}

func (s *Service) search(ctx context.Context, name string, record *domain.Player) (domain.SearchResult, error) {
	start := time.Now()
	defer func() { s.metrics.RecordSearchLatency(time.Since(start)) }()
	s.metrics.RecordSearch(name)

	sport := domain.SportUnknown
	team := ""
	if record != nil {
		sport = record.Sport
		team = record.Team
	}

	subs := discovery.Discover(name, sport, team)
	if len(subs) > s.cfg.MaxSubreddits {
		subs = subs[:s.cfg.MaxSubreddits]
	}

	posts, err := s.fanOutSearch(ctx, name, subs)
	if err != nil {
		return domain.SearchResult{}, err
	}

	posts = dedupeByID(posts)
	s.sortPosts(posts, sport)

	if len(posts) < s.cfg.MinPosts {
		s.logger.Info("sparse coverage for player",
			"player", name, "posts", len(posts), "subreddits", len(subs))
	}

	comments := s.fetchComments(ctx, name, posts)

	return domain.SearchResult{
		Posts:              posts,
		Comments:           comments,
		SearchedSubreddits: subs,
	}, nil
}

// fanOutSearch issues one concurrent, individually time-bounded search
// per subreddit and collects whatever settled successfully. Results keep
// discovery order so dedup is deterministic.
func (s *Service) fanOutSearch(ctx context.Context, name string, subs []string) ([]domain.Post, error) {
	perSub := int(math.Ceil(float64(s.cfg.TotalPosts)/float64(len(subs)))) + s.cfg.QuotaBuffer

	results := make([][]domain.Post, len(subs))
	errs := make([]error, len(subs))

	var wg sync.WaitGroup
	for i, sub := range subs {
		wg.Add(1)
		go func(i int, sub string) {
			defer wg.Done()
			sctx, cancel := context.WithTimeout(ctx, s.cfg.SearchTimeout)
			defer cancel()
			posts, err := s.collector.SearchSubreddit(sctx, sub, name, perSub)
			if err != nil {
				errs[i] = err
				return
			}
			for _, p := range posts {
				if p.Subreddit == "" {
					p.Subreddit = sub
				}
				if mentionsPlayer(name, p.Title, p.Body) {
					results[i] = append(results[i], p)
				}
			}
		}(i, sub)
	}
	wg.Wait()

	var merged []domain.Post
	for i, err := range errs {
		if err != nil {
			if errors.Is(err, collector.ErrAuth) {
				return nil, fmt.Errorf("searching r/%s: %w", subs[i], err)
			}
			s.metrics.RecordSubredditError(subs[i])
			s.logger.Warn("subreddit search failed", "subreddit", subs[i], "err", err)
			continue
		}
		merged = append(merged, results[i]...)
	}
	return merged, nil
}

// sortPosts orders by subreddit priority, then engagement when the gap
// exceeds the noise band, then recency.
func (s *Service) sortPosts(posts []domain.Post, sport domain.Sport) {
	sort.SliceStable(posts, func(i, j int) bool {
		pi := discovery.Priority(posts[i].Subreddit, sport)
		pj := discovery.Priority(posts[j].Subreddit, sport)
		if pi != pj {
			return pi > pj
		}
		ei := engagement(posts[i])
		ej := engagement(posts[j])
		if math.Abs(ei-ej) > engagementNoiseBand {
			return ei > ej
		}
		return posts[i].CreatedUTC > posts[j].CreatedUTC
	})
}

// fetchComments enriches the top posts with a bounded comment budget.
// Failures per post degrade to no comments.
func (s *Service) fetchComments(ctx context.Context, name string, posts []domain.Post) []domain.Comment {
	topN := s.cfg.TopPostsForComments
	if s.cfg.PostsPerPage < topN {
		topN = s.cfg.PostsPerPage
	}
	if len(posts) < topN {
		topN = len(posts)
	}
	if topN == 0 {
		return nil
	}
	perPost := s.cfg.CommentBudget / topN
	if perPost < 1 {
		perPost = 1
	}

	results := make([][]domain.Comment, topN)
	var wg sync.WaitGroup
	for i := 0; i < topN; i++ {
		wg.Add(1)
		go func(i int, post domain.Post) {
			defer wg.Done()
			cctx, cancel := context.WithTimeout(ctx, s.cfg.CommentTimeout)
			defer cancel()
			comments, err := s.collector.Comments(cctx, post.ID, perPost)
			if err != nil {
				s.logger.Warn("comment fetch failed", "post", post.ID, "err", err)
				return
			}
			for _, c := range comments {
				if mentionsPlayer(name, c.Body, "") {
					results[i] = append(results[i], c)
				}
			}
		}(i, posts[i])
	}
	wg.Wait()

	var merged []domain.Comment
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// mentionsPlayer keeps a document when its text contains the full player
// name, every name token, or any token longer than 3 characters. The
// looseness is deliberate: nicknames and partial mentions would slip past
// a strict filter.
func mentionsPlayer(name, title, body string) bool {
	text := strings.ToLower(title + " " + body)
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	if strings.Contains(text, name) {
		return true
	}
	tokens := strings.Fields(name)
	all := len(tokens) > 0
	for _, t := range tokens {
		if !strings.Contains(text, t) {
			all = false
			break
		}
	}
	if all {
		return true
	}
	for _, t := range tokens {
		if len(t) > 3 && strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// dedupeByID keeps the first occurrence of each post id.
func dedupeByID(posts []domain.Post) []domain.Post {
	seen := make(map[string]struct{}, len(posts))
	out := posts[:0]
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func engagement(p domain.Post) float64 {
	return float64(p.Score) + 0.5*float64(p.CommentCount)
}

// ClearCache drops every cached search result.
func (s *Service) ClearCache() {
	s.cache.Clear()
}
