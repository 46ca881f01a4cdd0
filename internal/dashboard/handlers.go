package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/qepting91/fanpulse/internal/domain"
	"github.com/qepting91/fanpulse/internal/insight"
	"github.com/qepting91/fanpulse/internal/pagination"
)

type discussionsResponse struct {
	Player             string           `json:"player"`
	View               pagination.View  `json:"view"`
	Comments           []domain.Comment `json:"comments"`
	SearchedSubreddits []string         `json:"searched_subreddits"`
}

type summaryResponse struct {
	Summary insight.Summary `json:"summary"`
	Posts   int             `json:"posts_analyzed"`
}

func (s *Server) handlePlayerSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httpError(w, http.StatusBadRequest, "missing query parameter 'q'")
		return
	}
	limit := intParam(r, "limit", 10)
	writeJSON(w, s.dir.SearchByName(q, limit))
}

func (s *Server) handleDiscussions(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		httpError(w, http.StatusBadRequest, "missing query parameter 'player'")
		return
	}

	record := s.lookupPlayer(player)
	result, err := s.agg.SearchPlayerMentions(r.Context(), player, record)
	if err != nil {
		s.logger.Error("player search failed", "player", player, "err", err)
		httpError(w, http.StatusBadGateway, "search failed, please retry")
		return
	}

	engine := pagination.NewEngine(result.Posts, intParam(r, "page_size", s.pageSize), nil)
	sortKey := domain.ParseSortKey(r.URL.Query().Get("sort"))
	category := domain.ParseFilterCategory(r.URL.Query().Get("category"))
	subreddit := r.URL.Query().Get("subreddit")
	if subreddit == "" {
		subreddit = pagination.AllSubreddits
	}
	engine.UpdateFilters(pagination.FilterUpdate{
		Sort:      &sortKey,
		Category:  &category,
		Subreddit: &subreddit,
	})
	engine.SetPage(intParam(r, "page", 1))

	writeJSON(w, discussionsResponse{
		Player:             player,
		View:               engine.View(),
		Comments:           result.Comments,
		SearchedSubreddits: result.SearchedSubreddits,
	})
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", 10)

	var (
		scores []domain.PlayerScore
		err    error
	)
	switch r.URL.Query().Get("type") {
	case "trending":
		scores, err = s.rank.Trending(r.Context(), limit)
	case "elite":
		scores, err = s.rank.EliteOrAllStar(r.Context(), limit)
	default:
		sport := domain.ParseSport(r.URL.Query().Get("sport"))
		if sport == domain.SportUnknown {
			httpError(w, http.StatusBadRequest, "unknown sport")
			return
		}
		scores, err = s.rank.TopBySport(r.Context(), sport, limit)
	}
	if err != nil {
		s.logger.Error("ranking failed", "err", err)
		httpError(w, http.StatusInternalServerError, "ranking failed")
		return
	}
	writeJSON(w, scores)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		httpError(w, http.StatusBadRequest, "missing query parameter 'player'")
		return
	}

	record := s.lookupPlayer(player)
	result, err := s.agg.SearchPlayerMentions(r.Context(), player, record)
	if err != nil {
		s.logger.Error("player search failed", "player", player, "err", err)
		httpError(w, http.StatusBadGateway, "search failed, please retry")
		return
	}

	// Summarize never fails: worst case is the local fallback.
	summary := s.insight.Summarize(r.Context(), player, result.Posts)
	writeJSON(w, summaryResponse{Summary: summary, Posts: len(result.Posts)})
}

// lookupPlayer resolves a name to its directory record, if any, so
// discovery can use sport and team.
func (s *Server) lookupPlayer(name string) *domain.Player {
	matches := s.dir.SearchByName(name, 1)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func intParam(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
