package players

import "github.com/qepting91/fanpulse/internal/domain"

// Static roster used as the player directory. Real analytics feeds are a
// non-goal; the directory covers the headline names per league.
var roster = []domain.Player{
	// NBA
	{Name: "LeBron James", Team: "Los Angeles Lakers", Position: "SF", Sport: domain.SportNBA},
	{Name: "Stephen Curry", Team: "Golden State Warriors", Position: "PG", Sport: domain.SportNBA},
	{Name: "Kevin Durant", Team: "Phoenix Suns", Position: "SF", Sport: domain.SportNBA},
	{Name: "Giannis Antetokounmpo", Team: "Milwaukee Bucks", Position: "PF", Sport: domain.SportNBA},
	{Name: "Nikola Jokic", Team: "Denver Nuggets", Position: "C", Sport: domain.SportNBA},
	{Name: "Luka Doncic", Team: "Los Angeles Lakers", Position: "PG", Sport: domain.SportNBA},
	{Name: "Jayson Tatum", Team: "Boston Celtics", Position: "SF", Sport: domain.SportNBA},
	{Name: "Joel Embiid", Team: "Philadelphia 76ers", Position: "C", Sport: domain.SportNBA},
	{Name: "Shai Gilgeous-Alexander", Team: "Oklahoma City Thunder", Position: "PG", Sport: domain.SportNBA},
	{Name: "Anthony Edwards", Team: "Minnesota Timberwolves", Position: "SG", Sport: domain.SportNBA},
	{Name: "Victor Wembanyama", Team: "San Antonio Spurs", Position: "C", Sport: domain.SportNBA},
	{Name: "Devin Booker", Team: "Phoenix Suns", Position: "SG", Sport: domain.SportNBA},
	{Name: "Ja Morant", Team: "Memphis Grizzlies", Position: "PG", Sport: domain.SportNBA},
	{Name: "Jalen Brunson", Team: "New York Knicks", Position: "PG", Sport: domain.SportNBA},
	{Name: "Damian Lillard", Team: "Milwaukee Bucks", Position: "PG", Sport: domain.SportNBA},
	{Name: "Tyrese Haliburton", Team: "Indiana Pacers", Position: "PG", Sport: domain.SportNBA},
	{Name: "Donovan Mitchell", Team: "Cleveland Cavaliers", Position: "SG", Sport: domain.SportNBA},
	{Name: "Paolo Banchero", Team: "Orlando Magic", Position: "PF", Sport: domain.SportNBA},

	// NFL
	{Name: "Patrick Mahomes", Team: "Kansas City Chiefs", Position: "QB", Sport: domain.SportNFL},
	{Name: "Josh Allen", Team: "Buffalo Bills", Position: "QB", Sport: domain.SportNFL},
	{Name: "Lamar Jackson", Team: "Baltimore Ravens", Position: "QB", Sport: domain.SportNFL},
	{Name: "Joe Burrow", Team: "Cincinnati Bengals", Position: "QB", Sport: domain.SportNFL},
	{Name: "Jalen Hurts", Team: "Philadelphia Eagles", Position: "QB", Sport: domain.SportNFL},
	{Name: "Christian McCaffrey", Team: "San Francisco 49ers", Position: "RB", Sport: domain.SportNFL},
	{Name: "Tyreek Hill", Team: "Miami Dolphins", Position: "WR", Sport: domain.SportNFL},
	{Name: "Justin Jefferson", Team: "Minnesota Vikings", Position: "WR", Sport: domain.SportNFL},
	{Name: "CeeDee Lamb", Team: "Dallas Cowboys", Position: "WR", Sport: domain.SportNFL},
	{Name: "Ja'Marr Chase", Team: "Cincinnati Bengals", Position: "WR", Sport: domain.SportNFL},
	{Name: "Micah Parsons", Team: "Dallas Cowboys", Position: "LB", Sport: domain.SportNFL},
	{Name: "Travis Kelce", Team: "Kansas City Chiefs", Position: "TE", Sport: domain.SportNFL},
	{Name: "Saquon Barkley", Team: "Philadelphia Eagles", Position: "RB", Sport: domain.SportNFL},
	{Name: "C.J. Stroud", Team: "Houston Texans", Position: "QB", Sport: domain.SportNFL},
	{Name: "Jayden Daniels", Team: "Washington Commanders", Position: "QB", Sport: domain.SportNFL},
	{Name: "Myles Garrett", Team: "Cleveland Browns", Position: "DE", Sport: domain.SportNFL},

	// NHL
	{Name: "Connor McDavid", Team: "Edmonton Oilers", Position: "C", Sport: domain.SportNHL},
	{Name: "Auston Matthews", Team: "Toronto Maple Leafs", Position: "C", Sport: domain.SportNHL},
	{Name: "Nathan MacKinnon", Team: "Colorado Avalanche", Position: "C", Sport: domain.SportNHL},
	{Name: "Leon Draisaitl", Team: "Edmonton Oilers", Position: "C", Sport: domain.SportNHL},
	{Name: "David Pastrnak", Team: "Boston Bruins", Position: "RW", Sport: domain.SportNHL},
	{Name: "Nikita Kucherov", Team: "Tampa Bay Lightning", Position: "RW", Sport: domain.SportNHL},
	{Name: "Cale Makar", Team: "Colorado Avalanche", Position: "D", Sport: domain.SportNHL},
	{Name: "Sidney Crosby", Team: "Pittsburgh Penguins", Position: "C", Sport: domain.SportNHL},
	{Name: "Alex Ovechkin", Team: "Washington Capitals", Position: "LW", Sport: domain.SportNHL},
	{Name: "Connor Bedard", Team: "Chicago Blackhawks", Position: "C", Sport: domain.SportNHL},
	{Name: "Igor Shesterkin", Team: "New York Rangers", Position: "G", Sport: domain.SportNHL},
	{Name: "Quinn Hughes", Team: "Vancouver Canucks", Position: "D", Sport: domain.SportNHL},

	// MLB
	{Name: "Shohei Ohtani", Team: "Los Angeles Dodgers", Position: "DH", Sport: domain.SportMLB},
	{Name: "Aaron Judge", Team: "New York Yankees", Position: "RF", Sport: domain.SportMLB},
	{Name: "Mookie Betts", Team: "Los Angeles Dodgers", Position: "SS", Sport: domain.SportMLB},
	{Name: "Juan Soto", Team: "New York Mets", Position: "RF", Sport: domain.SportMLB},
	{Name: "Ronald Acuna Jr.", Team: "Atlanta Braves", Position: "OF", Sport: domain.SportMLB},
	{Name: "Bobby Witt Jr.", Team: "Kansas City Royals", Position: "SS", Sport: domain.SportMLB},
	{Name: "Bryce Harper", Team: "Philadelphia Phillies", Position: "1B", Sport: domain.SportMLB},
	{Name: "Freddie Freeman", Team: "Los Angeles Dodgers", Position: "1B", Sport: domain.SportMLB},
	{Name: "Jose Altuve", Team: "Houston Astros", Position: "2B", Sport: domain.SportMLB},
	{Name: "Gunnar Henderson", Team: "Baltimore Orioles", Position: "SS", Sport: domain.SportMLB},
	{Name: "Corbin Carroll", Team: "Arizona Diamondbacks", Position: "OF", Sport: domain.SportMLB},
	{Name: "Paul Skenes", Team: "Pittsburgh Pirates", Position: "P", Sport: domain.SportMLB},
}

// manualBoosts nudge search ranking for names users overwhelmingly mean
// when typing an ambiguous query.
var manualBoosts = map[string]float64{
	"LeBron James":   5,
	"Shohei Ohtani":  5,
	"Connor McDavid": 3,
}

// sportTieBreak orders equally scored matches by league prominence.
var sportTieBreak = map[domain.Sport]float64{
	domain.SportNBA: 0.4,
	domain.SportNFL: 0.3,
	domain.SportMLB: 0.2,
	domain.SportNHL: 0.1,
}
