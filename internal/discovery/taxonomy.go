package discovery

import "github.com/qepting91/fanpulse/internal/domain"

// taxonomy holds the community tiers for one league. Team names map to
// their dedicated subreddit; the remaining tiers are ordered by how
// player-focused their discussion tends to be.
type taxonomy struct {
	primary  []string
	teams    map[string]string
	fantasy  []string
	analysis []string
	insider  []string
}

// general communities discuss every sport; they rank last.
var general = []string{"sports", "espn"}

var taxonomies = map[domain.Sport]taxonomy{
	domain.SportNBA: {
		primary: []string{"nba", "basketball"},
		teams: map[string]string{
			"Atlanta Hawks":          "AtlantaHawks",
			"Boston Celtics":         "bostonceltics",
			"Brooklyn Nets":          "GoNets",
			"Charlotte Hornets":      "CharlotteHornets",
			"Chicago Bulls":          "chicagobulls",
			"Cleveland Cavaliers":    "clevelandcavs",
			"Dallas Mavericks":       "Mavericks",
			"Denver Nuggets":         "denvernuggets",
			"Detroit Pistons":        "DetroitPistons",
			"Golden State Warriors":  "warriors",
			"Houston Rockets":        "rockets",
			"Indiana Pacers":         "pacers",
			"LA Clippers":            "LAClippers",
			"Los Angeles Lakers":     "lakers",
			"Memphis Grizzlies":      "memphisgrizzlies",
			"Miami Heat":             "heat",
			"Milwaukee Bucks":        "MkeBucks",
			"Minnesota Timberwolves": "timberwolves",
			"New Orleans Pelicans":   "NOLAPelicans",
			"New York Knicks":        "NYKnicks",
			"Oklahoma City Thunder":  "Thunder",
			"Orlando Magic":          "OrlandoMagic",
			"Philadelphia 76ers":     "sixers",
			"Phoenix Suns":           "suns",
			"Portland Trail Blazers": "ripcity",
			"Sacramento Kings":       "kings",
			"San Antonio Spurs":      "NBASpurs",
			"Toronto Raptors":        "torontoraptors",
			"Utah Jazz":              "UtahJazz",
			"Washington Wizards":     "washingtonwizards",
		},
		fantasy:  []string{"fantasybball", "dynastybb"},
		analysis: []string{"nbadiscussion", "nba_stats", "NBAtalk"},
		insider:  []string{"NBATradeIdeas", "nbaoffseason"},
	},
	domain.SportNFL: {
		primary: []string{"nfl"},
		teams: map[string]string{
			"Arizona Cardinals":     "AZCardinals",
			"Atlanta Falcons":       "falcons",
			"Baltimore Ravens":      "ravens",
			"Buffalo Bills":         "buffalobills",
			"Carolina Panthers":     "panthers",
			"Chicago Bears":         "CHIBears",
			"Cincinnati Bengals":    "bengals",
			"Cleveland Browns":      "Browns",
			"Dallas Cowboys":        "cowboys",
			"Denver Broncos":        "DenverBroncos",
			"Detroit Lions":         "detroitlions",
			"Green Bay Packers":     "GreenBayPackers",
			"Houston Texans":        "Texans",
			"Indianapolis Colts":    "Colts",
			"Jacksonville Jaguars":  "Jaguars",
			"Kansas City Chiefs":    "KansasCityChiefs",
			"Las Vegas Raiders":     "raiders",
			"Los Angeles Chargers":  "Chargers",
			"Los Angeles Rams":      "LosAngelesRams",
			"Miami Dolphins":        "miamidolphins",
			"Minnesota Vikings":     "minnesotavikings",
			"New England Patriots":  "Patriots",
			"New Orleans Saints":    "Saints",
			"New York Giants":       "NYGiants",
			"New York Jets":         "nyjets",
			"Philadelphia Eagles":   "eagles",
			"Pittsburgh Steelers":   "steelers",
			"San Francisco 49ers":   "49ers",
			"Seattle Seahawks":      "Seahawks",
			"Tampa Bay Buccaneers":  "buccaneers",
			"Tennessee Titans":      "Tennesseetitans",
			"Washington Commanders": "Commanders",
		},
		fantasy:  []string{"fantasyfootball", "DynastyFF"},
		analysis: []string{"NFL_Draft", "nflanalysis", "nflnoobs"},
		insider:  []string{"nfltradeideas", "NFLOffseason"},
	},
	domain.SportNHL: {
		primary: []string{"nhl", "hockey"},
		teams: map[string]string{
			"Anaheim Ducks":         "AnaheimDucks",
			"Boston Bruins":         "BostonBruins",
			"Buffalo Sabres":        "sabres",
			"Calgary Flames":        "CalgaryFlames",
			"Carolina Hurricanes":   "canes",
			"Chicago Blackhawks":    "hawks",
			"Colorado Avalanche":    "ColoradoAvalanche",
			"Columbus Blue Jackets": "BlueJackets",
			"Dallas Stars":          "DallasStars",
			"Detroit Red Wings":     "DetroitRedWings",
			"Edmonton Oilers":       "EdmontonOilers",
			"Florida Panthers":      "FloridaPanthers",
			"Los Angeles Kings":     "losangeleskings",
			"Minnesota Wild":        "wildhockey",
			"Montreal Canadiens":    "Habs",
			"Nashville Predators":   "Predators",
			"New Jersey Devils":     "devils",
			"New York Islanders":    "NewYorkIslanders",
			"New York Rangers":      "rangers",
			"Ottawa Senators":       "OttawaSenators",
			"Philadelphia Flyers":   "Flyers",
			"Pittsburgh Penguins":   "penguins",
			"San Jose Sharks":       "SanJoseSharks",
			"Seattle Kraken":        "SeattleKraken",
			"St. Louis Blues":       "stlouisblues",
			"Tampa Bay Lightning":   "TampaBayLightning",
			"Toronto Maple Leafs":   "leafs",
			"Vancouver Canucks":     "canucks",
			"Vegas Golden Knights":  "goldenknights",
			"Washington Capitals":   "caps",
			"Winnipeg Jets":         "winnipegjets",
		},
		fantasy:  []string{"fantasyhockey"},
		analysis: []string{"hockeyplayers", "nhldiscussion"},
		insider:  []string{"nhltradeideas", "NHLOffseason"},
	},
	domain.SportMLB: {
		primary: []string{"baseball", "mlb"},
		teams: map[string]string{
			"Arizona Diamondbacks":  "azdiamondbacks",
			"Atlanta Braves":        "Braves",
			"Baltimore Orioles":     "orioles",
			"Boston Red Sox":        "redsox",
			"Chicago Cubs":          "CHICubs",
			"Chicago White Sox":     "whitesox",
			"Cincinnati Reds":       "reds",
			"Cleveland Guardians":   "ClevelandGuardians",
			"Colorado Rockies":      "ColoradoRockies",
			"Detroit Tigers":        "motorcitykitties",
			"Houston Astros":        "Astros",
			"Kansas City Royals":    "KCRoyals",
			"Los Angeles Angels":    "angelsbaseball",
			"Los Angeles Dodgers":   "Dodgers",
			"Miami Marlins":         "miamimarlins",
			"Milwaukee Brewers":     "Brewers",
			"Minnesota Twins":       "minnesotatwins",
			"New York Mets":         "NewYorkMets",
			"New York Yankees":      "NYYankees",
			"Oakland Athletics":     "oaklandathletics",
			"Philadelphia Phillies": "phillies",
			"Pittsburgh Pirates":    "buccos",
			"San Diego Padres":      "Padres",
			"San Francisco Giants":  "SFGiants",
			"Seattle Mariners":      "Mariners",
			"St. Louis Cardinals":   "Cardinals",
			"Tampa Bay Rays":        "tampabayrays",
			"Texas Rangers":         "TexasRangers",
			"Toronto Blue Jays":     "Torontobluejays",
			"Washington Nationals":  "Nationals",
		},
		fantasy:  []string{"fantasybaseball"},
		analysis: []string{"Sabermetrics", "mlbanalysis"},
		insider:  []string{"mlbtradeideas", "MLBOffseason"},
	},
}
