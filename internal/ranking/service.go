// Package ranking computes heuristic multi-factor player rankings.
//
// Component scores carry a pseudo-random jitter so rankings look varied
// without real analytics data. The randomness is injected as a seedable
// source: production uses a time seed, tests pin one and assert exact
// output. Results are cached per (operation, sport, limit) with a TTL, so
// rankings are stable within the cache window and only vary across it.
package ranking

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/qepting91/fanpulse/internal/cache"
	"github.com/qepting91/fanpulse/internal/discovery"
	"github.com/qepting91/fanpulse/internal/domain"
)

// Total score weights.
const (
	weightBuzz        = 0.35
	weightPerformance = 0.25
	weightFantasy     = 0.15
	weightNews        = 0.10
	weightCoverage    = 0.15
)

const (
	defaultTTL         = 30 * time.Minute
	defaultTrendingTTL = 15 * time.Minute

	trendingNewsFloor  = 25.0
	trendingBuzzFloor  = 70.0
	trendingTotalFloor = 75.0

	trendingPoolPerSport = 20
	elitePoolPerSport    = 15
)

// Config tunes the ranking service. Zero values take defaults; Seed 0
// seeds from the wall clock.
type Config struct {
	TTL         time.Duration
	TrendingTTL time.Duration
	Seed        int64
}

// Service computes and caches player rankings.
type Service struct {
	dir         domain.PlayerDirectory
	cache       *cache.Cache[[]domain.PlayerScore]
	ttl         time.Duration
	trendingTTL time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds a ranking service over the given directory. The
// clock is injectable for TTL tests; nil defaults to time.Now.
func NewService(dir domain.PlayerDirectory, cfg Config, now func() time.Time) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.TrendingTTL <= 0 {
		cfg.TrendingTTL = defaultTrendingTTL
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Service{
		dir:         dir,
		cache:       cache.New[[]domain.PlayerScore](now),
		ttl:         cfg.TTL,
		trendingTTL: cfg.TrendingTTL,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
	}
}

// TopBySport returns up to limit players of one league ordered by
// descending total score. Results are cached for the general TTL.
func (s *Service) TopBySport(ctx context.Context, sport domain.Sport, limit int) ([]domain.PlayerScore, error) {
	key := fmt.Sprintf("top:%s:%d", sport, limit)
	return s.cache.GetOrFill(ctx, key, s.ttl, func(context.Context) ([]domain.PlayerScore, error) {
		return head(s.rankSport(sport), limit), nil
	})
}

// Trending returns up to limit players across all leagues with elevated
// news or buzz, ordered by news+buzz. Cached for the shorter trending TTL.
func (s *Service) Trending(ctx context.Context, limit int) ([]domain.PlayerScore, error) {
	key := fmt.Sprintf("trending::%d", limit)
	return s.cache.GetOrFill(ctx, key, s.trendingTTL, func(context.Context) ([]domain.PlayerScore, error) {
		var pool []domain.PlayerScore
		for _, sport := range domain.Sports {
			pool = append(pool, head(s.rankSport(sport), trendingPoolPerSport)...)
		}
		var out []domain.PlayerScore
		for _, ps := range pool {
			if ps.News > trendingNewsFloor || ps.Buzz > trendingBuzzFloor {
				ps.Tag = domain.TagTrending
				out = append(out, ps)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].News+out[i].Buzz > out[j].News+out[j].Buzz
		})
		return head(out, limit), nil
	})
}

// EliteOrAllStar returns up to limit all-star players across all leagues
// ordered by total score.
func (s *Service) EliteOrAllStar(ctx context.Context, limit int) ([]domain.PlayerScore, error) {
	key := fmt.Sprintf("elite::%d", limit)
	return s.cache.GetOrFill(ctx, key, s.ttl, func(context.Context) ([]domain.PlayerScore, error) {
		var out []domain.PlayerScore
		for _, sport := range domain.Sports {
			for _, ps := range head(s.rankSport(sport), elitePoolPerSport) {
				if allStars[sport][ps.Player.Name] {
					ps.Tag = domain.TagElite
					out = append(out, ps)
				}
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Total > out[j].Total
		})
		return head(out, limit), nil
	})
}

// ClearCache drops every cached ranking; the next query recomputes.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

func (s *Service) rankSport(sport domain.Sport) []domain.PlayerScore {
	players := s.dir.PlayersBySport(sport)
	scores := make([]domain.PlayerScore, 0, len(players))
	for _, p := range players {
		scores = append(scores, s.scorePlayer(p))
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})
	return scores
}

func (s *Service) scorePlayer(p domain.Player) domain.PlayerScore {
	isAllStar := allStars[p.Sport][p.Name]

	coverage := 30.0 // every supported sport has a primary subreddit
	if discovery.HasTeamSubreddit(p.Sport, p.Team) {
		coverage += 20
	}
	if discovery.HasFantasySubreddit(p.Sport) {
		coverage += 15
	}
	if crossSportPopular[p.Name] {
		coverage += 10
	}
	if isAllStar {
		coverage += 10
	}
	coverage = cap100(coverage + s.jitter(10))

	buzz := 40 + s.jitter(30)
	if popularNames[p.Name] {
		buzz += 15
	}
	if isAllStar {
		buzz += 10
	}
	if onPopularTeam(p.Team) {
		buzz += 8
	}
	// Broad community coverage amplifies raw buzz.
	buzz = cap100(buzz * (1 + coverage/100*0.15))

	perf := 45 + s.jitter(25)
	if elitePositions[p.Sport][p.Position] {
		perf += 15
	}
	if primeYears[p.Name] {
		perf += 10
	}
	perf = cap100(perf)

	fantasy := 40 + s.jitter(30)
	if fantasyRelevant[p.Name] {
		fantasy += 20
	}
	fantasy = cap100(fantasy)

	// Baseline sits below the trending news floor so quiet players can
	// actually fail the trending filter.
	news := 10 + s.jitter(40)
	if recentNewsmakers[p.Name] {
		news += 20
	}
	news = cap100(news)

	ps := domain.PlayerScore{
		Player:      p,
		Buzz:        buzz,
		Performance: perf,
		Fantasy:     fantasy,
		News:        news,
		Coverage:    coverage,
	}
	ps.Total = buzz*weightBuzz + perf*weightPerformance + fantasy*weightFantasy +
		news*weightNews + coverage*weightCoverage

	switch {
	case isAllStar:
		ps.Tag = domain.TagElite
	case breakouts[p.Name]:
		ps.Tag = domain.TagTrending
	case ps.Total > trendingTotalFloor:
		ps.Tag = domain.TagTrending
	}
	return ps
}

func (s *Service) jitter(span float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * span
}

func onPopularTeam(team string) bool {
	for _, frag := range popularTeamFragments {
		if strings.Contains(team, frag) {
			return true
		}
	}
	return false
}

func cap100(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

func head(s []domain.PlayerScore, n int) []domain.PlayerScore {
	if n < 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
