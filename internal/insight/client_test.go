package insight

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/qepting91/fanpulse/internal/domain"
)

var samplePosts = []domain.Post{
	{Title: "Luka Doncic dominant with a career high", Body: "unstoppable performance", Subreddit: "mavericks", Score: 500, CommentCount: 120},
	{Title: "Luka Doncic clutch again", Body: "elite closer", Subreddit: "nba", Score: 300, CommentCount: 80},
}

func TestEmptyCorpusSummary(t *testing.T) {
	c := NewClient(Config{Endpoint: "http://unreachable.invalid"}, nil, nil)
	s := c.Summarize(context.Background(), "Luka Doncic", nil)

	if s.Player != "Luka Doncic" {
		t.Fatalf("player = %q", s.Player)
	}
	if s.PerformanceScore != 0 || s.TrajectoryConfidence != 0 {
		t.Fatalf("empty corpus must score zero: %+v", s)
	}
	if s.Sentiment != "neutral" || s.Trajectory != TrajectorySteady || s.Recommendation != RecommendationHold {
		t.Fatalf("empty corpus labels: %+v", s)
	}
	if s.KeyThemes == nil || len(s.KeyThemes) != 0 {
		t.Fatalf("KeyThemes = %v; want empty non-nil", s.KeyThemes)
	}
	if s.SubredditsAnalyzed == nil || len(s.SubredditsAnalyzed) != 0 {
		t.Fatalf("SubredditsAnalyzed = %v; want empty non-nil", s.SubredditsAnalyzed)
	}
	if s.Source != "fallback" {
		t.Fatalf("source = %q", s.Source)
	}
}

func TestRemoteSummaryAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key123" {
			t.Errorf("missing bearer header: %q", r.Header.Get("Authorization"))
		}
		fmt.Fprint(w, `{
			"performance_score": 7.5,
			"trajectory_confidence": 82,
			"sentiment": "very_positive",
			"trajectory": "rising",
			"recommendation": "buy",
			"key_themes": ["scoring", "clutch"]
		}`)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "key123"}, nil, nil)
	s := c.Summarize(context.Background(), "Luka Doncic", samplePosts)

	if s.Source != "model" {
		t.Fatalf("source = %q; want model", s.Source)
	}
	if s.PerformanceScore != 7.5 || s.TrajectoryConfidence != 82 {
		t.Fatalf("scores not passed through: %+v", s)
	}
	if s.Trajectory != TrajectoryRising || s.Recommendation != RecommendationBuy {
		t.Fatalf("labels not passed through: %+v", s)
	}
	want := []string{"mavericks", "nba"}
	if len(s.SubredditsAnalyzed) != 2 || s.SubredditsAnalyzed[0] != want[0] || s.SubredditsAnalyzed[1] != want[1] {
		t.Fatalf("SubredditsAnalyzed = %v; want %v", s.SubredditsAnalyzed, want)
	}
}

func TestRemoteValuesClampedAndDefaulted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"performance_score": 99,
			"trajectory_confidence": -5,
			"sentiment": "ecstatic",
			"trajectory": "moonshot",
			"recommendation": "yolo"
		}`)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, nil, nil)
	s := c.Summarize(context.Background(), "Luka Doncic", samplePosts)

	if s.PerformanceScore != 10 {
		t.Fatalf("performance score = %v; want clamped to 10", s.PerformanceScore)
	}
	if s.TrajectoryConfidence != 0 {
		t.Fatalf("confidence = %v; want clamped to 0", s.TrajectoryConfidence)
	}
	if s.Sentiment != "neutral" {
		t.Fatalf("unknown sentiment label kept: %q", s.Sentiment)
	}
	if s.Trajectory != TrajectorySteady || s.Recommendation != RecommendationHold {
		t.Fatalf("unknown enum labels kept: %+v", s)
	}
}

func TestFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, nil, nil)
	s := c.Summarize(context.Background(), "Luka Doncic", samplePosts)

	if s.Source != "fallback" {
		t.Fatalf("source = %q; want fallback after 500", s.Source)
	}
	// The corpus is uniformly positive so the local rules should not
	// produce a negative read.
	if s.PerformanceScore < 0 {
		t.Fatalf("positive corpus scored %v", s.PerformanceScore)
	}
}

func TestFallbackOnMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"performance_score": `)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, nil, nil)
	s := c.Summarize(context.Background(), "Luka Doncic", samplePosts)
	if s.Source != "fallback" {
		t.Fatalf("source = %q; want fallback after malformed reply", s.Source)
	}
}

func TestNoEndpointAlwaysLocal(t *testing.T) {
	c := NewClient(Config{}, nil, nil)
	s := c.Summarize(context.Background(), "Luka Doncic", samplePosts)
	if s.Source != "fallback" {
		t.Fatalf("source = %q; want fallback with no endpoint", s.Source)
	}
	if s.PerformanceScore < -10 || s.PerformanceScore > 10 {
		t.Fatalf("score out of range: %v", s.PerformanceScore)
	}
	if s.TrajectoryConfidence < 0 || s.TrajectoryConfidence > 100 {
		t.Fatalf("confidence out of range: %v", s.TrajectoryConfidence)
	}
}

func TestFallbackNegativeCorpus(t *testing.T) {
	posts := []domain.Post{
		{Title: "Player X torn ACL, out for season", Body: "devastating injury news", Subreddit: "nba", Score: 900, CommentCount: 400},
		{Title: "Player X injured again, terrible awful season", Body: "out indefinitely, struggling badly", Subreddit: "nba", Score: 500, CommentCount: 200},
	}
	c := NewClient(Config{}, nil, nil)
	s := c.Summarize(context.Background(), "Player X", posts)

	if s.PerformanceScore >= 0 {
		t.Fatalf("injury corpus scored %v; want negative", s.PerformanceScore)
	}
	if s.Trajectory != TrajectoryDeclining && s.Recommendation != RecommendationSell {
		t.Fatalf("negative corpus read: trajectory=%q rec=%q", s.Trajectory, s.Recommendation)
	}
}
