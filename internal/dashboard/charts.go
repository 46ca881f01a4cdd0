package dashboard

import (
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/qepting91/fanpulse/internal/sentiment"
)

// handleCharts renders the dashboard page. Without a player parameter it
// shows the trending board; with one it adds the per-player community and
// sentiment breakdowns.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	trending, err := s.rank.Trending(r.Context(), 10)
	if err != nil {
		s.logger.Error("trending computation failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// 1. Trending board
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Trending Players (news + buzz)"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)
	var names []string
	var values []opts.BarData
	for _, ps := range trending {
		names = append(names, ps.Player.Name)
		values = append(values, opts.BarData{Value: ps.News + ps.Buzz})
	}
	bar.SetXAxis(names).AddSeries("Score", values)
	bar.Render(w)

	player := r.URL.Query().Get("player")
	if player == "" {
		return
	}

	result, err := s.agg.SearchPlayerMentions(r.Context(), player, s.lookupPlayer(player))
	if err != nil {
		s.logger.Error("player search failed", "player", player, "err", err)
		return
	}

	// 2. Subreddit dominance
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Subreddit Dominance: " + player}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)
	subCounts := make(map[string]int)
	for _, p := range result.Posts {
		subCounts[p.Subreddit]++
	}
	var pieItems []opts.PieData
	for k, v := range subCounts {
		pieItems = append(pieItems, opts.PieData{Name: k, Value: v})
	}
	pie.AddSeries("Posts", pieItems)
	pie.Render(w)

	// 3. Sentiment distribution
	sentBar := charts.NewBar()
	sentBar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Sentiment: " + player}))
	catCounts := make(map[sentiment.Category]int)
	for _, p := range result.Posts {
		res := sentiment.Score(p.Body, p.Title, p.Score, p.CommentCount)
		catCounts[res.Category]++
	}
	cats := []sentiment.Category{
		sentiment.VeryPositive, sentiment.Positive, sentiment.Neutral,
		sentiment.Negative, sentiment.VeryNegative,
	}
	var catX []string
	var catY []opts.BarData
	for _, c := range cats {
		catX = append(catX, string(c))
		catY = append(catY, opts.BarData{Value: catCounts[c]})
	}
	sentBar.SetXAxis(catX).AddSeries("Posts", catY)
	sentBar.Render(w)
}
