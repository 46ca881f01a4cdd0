package domain

import "strings"

// Sport identifies one of the supported leagues.
type Sport string

const (
	SportNBA     Sport = "nba"
	SportNFL     Sport = "nfl"
	SportNHL     Sport = "nhl"
	SportMLB     Sport = "mlb"
	SportUnknown Sport = ""
)

// Sports lists every supported league in a stable order.
var Sports = []Sport{SportNBA, SportNFL, SportNHL, SportMLB}

// ParseSport normalizes a user-supplied sport string.
func ParseSport(s string) Sport {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nba", "basketball":
		return SportNBA
	case "nfl", "football":
		return SportNFL
	case "nhl", "hockey":
		return SportNHL
	case "mlb", "baseball":
		return SportMLB
	default:
		return SportUnknown
	}
}

// SortKey selects the ordering applied to a filtered post set.
type SortKey string

const (
	SortHot       SortKey = "hot"
	SortNew       SortKey = "new"
	SortTop       SortKey = "top"
	SortRelevance SortKey = "relevance"
)

// ParseSortKey falls back to SortHot for unrecognized values.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortNew:
		return SortNew
	case SortTop:
		return SortTop
	case SortRelevance:
		return SortRelevance
	default:
		return SortHot
	}
}

// FilterCategory narrows a post set to a discussion topic.
type FilterCategory string

const (
	CategoryAll         FilterCategory = "all"
	CategoryInjury      FilterCategory = "injury"
	CategoryTrade       FilterCategory = "trade"
	CategoryFantasy     FilterCategory = "fantasy"
	CategoryPerformance FilterCategory = "performance"
)

// ParseFilterCategory falls back to CategoryAll for unrecognized values.
func ParseFilterCategory(s string) FilterCategory {
	switch FilterCategory(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryInjury:
		return CategoryInjury
	case CategoryTrade:
		return CategoryTrade
	case CategoryFantasy:
		return CategoryFantasy
	case CategoryPerformance:
		return CategoryPerformance
	default:
		return CategoryAll
	}
}
