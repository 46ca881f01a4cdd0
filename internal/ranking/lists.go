package ranking

import "github.com/qepting91/fanpulse/internal/domain"

// Curated heuristic inputs. Real analytics feeds are out of scope; these
// lists stand in for buzz, news, and fantasy signal until one exists.

// popularNames reliably dominate discussion volume regardless of form.
var popularNames = stringSet(
	"LeBron James", "Stephen Curry", "Kevin Durant", "Giannis Antetokounmpo",
	"Patrick Mahomes", "Travis Kelce", "Josh Allen",
	"Connor McDavid", "Sidney Crosby", "Alex Ovechkin",
	"Shohei Ohtani", "Aaron Judge", "Bryce Harper",
)

// crossSportPopular names draw discussion outside their own league's
// communities.
var crossSportPopular = stringSet(
	"LeBron James", "Patrick Mahomes", "Shohei Ohtani", "Stephen Curry",
	"Travis Kelce", "Aaron Judge",
)

// allStars per league; membership drives the elite tag and the
// EliteOrAllStar query.
var allStars = map[domain.Sport]map[string]bool{
	domain.SportNBA: stringSet(
		"LeBron James", "Stephen Curry", "Kevin Durant", "Giannis Antetokounmpo",
		"Nikola Jokic", "Luka Doncic", "Jayson Tatum", "Joel Embiid",
		"Shai Gilgeous-Alexander", "Anthony Edwards",
	),
	domain.SportNFL: stringSet(
		"Patrick Mahomes", "Josh Allen", "Lamar Jackson", "Christian McCaffrey",
		"Tyreek Hill", "Justin Jefferson", "Travis Kelce", "Micah Parsons",
	),
	domain.SportNHL: stringSet(
		"Connor McDavid", "Auston Matthews", "Nathan MacKinnon", "Leon Draisaitl",
		"Nikita Kucherov", "Cale Makar", "David Pastrnak",
	),
	domain.SportMLB: stringSet(
		"Shohei Ohtani", "Aaron Judge", "Mookie Betts", "Juan Soto",
		"Ronald Acuna Jr.", "Bobby Witt Jr.", "Freddie Freeman",
	),
}

// popularTeamFragments match against team names; big-market teams attract
// extra discussion for everyone on the roster.
var popularTeamFragments = []string{
	"Lakers", "Warriors", "Celtics", "Knicks",
	"Cowboys", "Chiefs", "Eagles", "49ers",
	"Maple Leafs", "Canadiens", "Rangers",
	"Yankees", "Dodgers", "Red Sox",
}

// primeYears names are in their statistical peak.
var primeYears = stringSet(
	"Nikola Jokic", "Shai Gilgeous-Alexander", "Luka Doncic", "Jayson Tatum",
	"Josh Allen", "Lamar Jackson", "Justin Jefferson",
	"Connor McDavid", "Nathan MacKinnon", "Cale Makar",
	"Shohei Ohtani", "Aaron Judge", "Bobby Witt Jr.",
)

// fantasyRelevant names headline draft boards and waiver columns.
var fantasyRelevant = stringSet(
	"Nikola Jokic", "Luka Doncic", "Shai Gilgeous-Alexander",
	"Christian McCaffrey", "CeeDee Lamb", "Ja'Marr Chase", "Saquon Barkley",
	"Justin Jefferson", "Tyreek Hill",
	"Connor McDavid", "Nikita Kucherov", "Leon Draisaitl",
	"Shohei Ohtani", "Bobby Witt Jr.", "Ronald Acuna Jr.",
)

// recentNewsmakers have an active storyline driving news volume.
var recentNewsmakers = stringSet(
	"Luka Doncic", "Jayson Tatum", "Victor Wembanyama", "Ja Morant",
	"Jayden Daniels", "C.J. Stroud", "Saquon Barkley",
	"Connor Bedard", "Alex Ovechkin",
	"Juan Soto", "Paul Skenes", "Shohei Ohtani",
)

// breakouts get the trending tag regardless of total score.
var breakouts = stringSet(
	"Victor Wembanyama", "Anthony Edwards", "Paolo Banchero",
	"Jayden Daniels", "C.J. Stroud",
	"Connor Bedard", "Quinn Hughes",
	"Paul Skenes", "Gunnar Henderson", "Corbin Carroll",
)

// elitePositions per league carry an outsized share of team outcomes.
var elitePositions = map[domain.Sport]map[string]bool{
	domain.SportNBA: stringSet("PG", "C"),
	domain.SportNFL: stringSet("QB", "WR"),
	domain.SportNHL: stringSet("C", "G"),
	domain.SportMLB: stringSet("SS", "P", "DH"),
}

func stringSet(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}
