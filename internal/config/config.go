// Package config provides centralized configuration with environment
// variable support for credential handling.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Reddit  RedditConfig
	Search  SearchConfig
	Ranking RankingConfig
	Insight InsightConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port int
}

// RedditConfig holds collector mode and Reddit API credentials.
// Credentials should only be set via environment variables.
type RedditConfig struct {
	Mode      string // "api", "public", or "mock"
	ClientID  string
	Secret    string
	Username  string
	Password  string
	UserAgent string
}

// SearchConfig tunes the aggregation pipeline.
type SearchConfig struct {
	MaxSubreddits       int
	TotalPosts          int
	PostsPerPage        int
	TopPostsForComments int
	CommentBudget       int
	SearchTimeout       time.Duration
	CommentTimeout      time.Duration
	CacheTTL            time.Duration
}

// RankingConfig tunes the ranking service. Seed 0 means seed from the
// clock.
type RankingConfig struct {
	TTL             time.Duration
	TrendingTTL     time.Duration
	Seed            int64
	RefreshSchedule string // cron spec for the trending precompute
}

// InsightConfig points at the remote summarization endpoint. An empty
// endpoint keeps summaries fully local.
type InsightConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Load reads configuration from an optional config.yaml plus environment
// variables; environment variables take precedence.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvVars()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional when env vars cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: stringOr("server.host", "SERVER_HOST", "0.0.0.0"),
			Port: intOr("server.port", "SERVER_PORT", 8080),
		},
		Reddit: RedditConfig{
			Mode:      stringOr("reddit.mode", "COLLECTOR_MODE", "mock"),
			ClientID:  stringOr("reddit.client_id", "REDDIT_CLIENT_ID", ""),
			Secret:    stringOr("reddit.client_secret", "REDDIT_CLIENT_SECRET", ""),
			Username:  stringOr("reddit.username", "REDDIT_USERNAME", ""),
			Password:  stringOr("reddit.password", "REDDIT_PASSWORD", ""),
			UserAgent: stringOr("reddit.user_agent", "REDDIT_USER_AGENT", "fanpulse/1.0"),
		},
		Search: SearchConfig{
			MaxSubreddits:       intOr("search.max_subreddits", "SEARCH_MAX_SUBREDDITS", 15),
			TotalPosts:          intOr("search.total_posts", "SEARCH_TOTAL_POSTS", 30),
			PostsPerPage:        intOr("search.posts_per_page", "SEARCH_POSTS_PER_PAGE", 10),
			TopPostsForComments: intOr("search.top_posts_for_comments", "SEARCH_TOP_POSTS_FOR_COMMENTS", 5),
			CommentBudget:       intOr("search.comment_budget", "SEARCH_COMMENT_BUDGET", 15),
			SearchTimeout:       durationOr("search.search_timeout", "SEARCH_TIMEOUT", 4*time.Second),
			CommentTimeout:      durationOr("search.comment_timeout", "SEARCH_COMMENT_TIMEOUT", 2*time.Second),
			CacheTTL:            durationOr("search.cache_ttl", "SEARCH_CACHE_TTL", 10*time.Minute),
		},
		Ranking: RankingConfig{
			TTL:             durationOr("ranking.ttl", "RANKING_TTL", 30*time.Minute),
			TrendingTTL:     durationOr("ranking.trending_ttl", "RANKING_TRENDING_TTL", 15*time.Minute),
			Seed:            int64(intOr("ranking.seed", "RANKING_SEED", 0)),
			RefreshSchedule: stringOr("ranking.refresh_schedule", "RANKING_REFRESH_SCHEDULE", "@every 15m"),
		},
		Insight: InsightConfig{
			Endpoint: stringOr("insight.endpoint", "INSIGHT_ENDPOINT", ""),
			APIKey:   stringOr("insight.api_key", "INSIGHT_API_KEY", ""),
			Timeout:  durationOr("insight.timeout", "INSIGHT_TIMEOUT", 15*time.Second),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Reddit.Mode {
	case "mock":
	case "api":
		if c.Reddit.ClientID == "" || c.Reddit.Secret == "" || c.Reddit.Username == "" || c.Reddit.Password == "" {
			return fmt.Errorf("collector mode 'api' requires REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET, REDDIT_USERNAME, REDDIT_PASSWORD")
		}
	case "public":
		if c.Reddit.ClientID == "" || c.Reddit.Secret == "" {
			return fmt.Errorf("collector mode 'public' requires REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET")
		}
	default:
		return fmt.Errorf("unknown collector mode: %q", c.Reddit.Mode)
	}
	return nil
}

// bindEnvVars explicitly binds environment variables to viper keys.
func bindEnvVars() {
	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("server.port", "SERVER_PORT")

	viper.BindEnv("reddit.mode", "COLLECTOR_MODE")
	viper.BindEnv("reddit.client_id", "REDDIT_CLIENT_ID")
	viper.BindEnv("reddit.client_secret", "REDDIT_CLIENT_SECRET")
	viper.BindEnv("reddit.username", "REDDIT_USERNAME")
	viper.BindEnv("reddit.password", "REDDIT_PASSWORD")
	viper.BindEnv("reddit.user_agent", "REDDIT_USER_AGENT")

	viper.BindEnv("insight.endpoint", "INSIGHT_ENDPOINT")
	viper.BindEnv("insight.api_key", "INSIGHT_API_KEY")
}

func stringOr(viperKey, envKey, defaultVal string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	if val := viper.GetString(viperKey); val != "" {
		return val
	}
	return defaultVal
}

func intOr(viperKey, envKey string, defaultVal int) int {
	if val := os.Getenv(envKey); val != "" {
		var n int
		fmt.Sscanf(val, "%d", &n)
		if n != 0 {
			return n
		}
	}
	if val := viper.GetInt(viperKey); val != 0 {
		return val
	}
	return defaultVal
}

func durationOr(viperKey, envKey string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(envKey); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	if d := viper.GetDuration(viperKey); d > 0 {
		return d
	}
	return defaultVal
}
