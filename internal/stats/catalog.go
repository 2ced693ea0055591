package stats

import "sort"

// CatalogEntry maps a raw statistic key to its display metadata.
type CatalogEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

// The catalogs are fixed at startup and never mutated. Keys arriving in
// upstream payloads that are not listed here pass through with the raw
// key as label and sort after every cataloged key.
var infoCatalog = []CatalogEntry{
	{Key: "fullName", Label: "Full Name", Order: 1},
	{Key: "imageUrl", Label: "Photo", Order: 2},
	{Key: "currentTeam", Label: "Team", Order: 3},
	{Key: "useFirstName", Label: "First Name", Order: 4},
	{Key: "useLastName", Label: "Last Name", Order: 5},
	{Key: "middleName", Label: "Middle Name", Order: 6},
	{Key: "nickName", Label: "Nickname", Order: 7},
	{Key: "primaryPosition", Label: "Position", Order: 8},
	{Key: "primaryNumber", Label: "Jersey Number", Order: 9},
	{Key: "birthDate", Label: "Birth Date", Order: 10},
	{Key: "birthCity", Label: "Birth City", Order: 11},
	{Key: "birthStateProvince", Label: "Birth State/Province", Order: 12},
	{Key: "birthCountry", Label: "Birth Country", Order: 13},
	{Key: "height", Label: "Height", Order: 14},
	{Key: "weight", Label: "Weight", Order: 15},
	{Key: "batSide", Label: "Bats", Order: 16},
	{Key: "pitchHand", Label: "Throws", Order: 17},
	{Key: "mlbDebutDate", Label: "MLB Debut", Order: 18},
	{Key: "draftYear", Label: "Draft Year", Order: 19},
}

var hittingCatalog = []CatalogEntry{
	{Key: "season", Label: "Season", Order: 1},
	{Key: "gamesPlayed", Label: "Games Played", Order: 2},
	{Key: "atBats", Label: "At Bats", Order: 3},
	{Key: "runs", Label: "Runs", Order: 4},
	{Key: "hits", Label: "Hits", Order: 5},
	{Key: "doubles", Label: "Doubles", Order: 6},
	{Key: "triples", Label: "Triples", Order: 7},
	{Key: "homeRuns", Label: "Home Runs", Order: 8},
	{Key: "rbi", Label: "RBI", Order: 9},
	{Key: "baseOnBalls", Label: "Walks", Order: 10},
	{Key: "strikeOuts", Label: "Strikeouts", Order: 11},
	{Key: "stolenBases", Label: "Stolen Bases", Order: 12},
	{Key: "caughtStealing", Label: "Caught Stealing", Order: 13},
	{Key: "avg", Label: "Batting Average", Order: 14},
	{Key: "obp", Label: "On-Base Percentage", Order: 15},
	{Key: "slg", Label: "Slugging", Order: 16},
	{Key: "ops", Label: "OPS", Order: 17},
}

var pitchingCatalog = []CatalogEntry{
	{Key: "season", Label: "Season", Order: 1},
	{Key: "wins", Label: "Wins", Order: 2},
	{Key: "losses", Label: "Losses", Order: 3},
	{Key: "era", Label: "ERA", Order: 4},
	{Key: "gamesPlayed", Label: "Games Played", Order: 5},
	{Key: "gamesStarted", Label: "Games Started", Order: 6},
	{Key: "completeGames", Label: "Complete Games", Order: 7},
	{Key: "shutouts", Label: "Shutouts", Order: 8},
	{Key: "saves", Label: "Saves", Order: 9},
	{Key: "inningsPitched", Label: "Innings Pitched", Order: 10},
	{Key: "hits", Label: "Hits Allowed", Order: 11},
	{Key: "runs", Label: "Runs Allowed", Order: 12},
	{Key: "earnedRuns", Label: "Earned Runs", Order: 13},
	{Key: "homeRuns", Label: "Home Runs Allowed", Order: 14},
	{Key: "baseOnBalls", Label: "Walks", Order: 15},
	{Key: "strikeOuts", Label: "Strikeouts", Order: 16},
	{Key: "whip", Label: "WHIP", Order: 17},
}

var catalogs = map[Domain][]CatalogEntry{
	DomainInfo:     infoCatalog,
	DomainHitting:  hittingCatalog,
	DomainPitching: pitchingCatalog,
}

var catalogIndex = buildIndex()

func buildIndex() map[Domain]map[string]CatalogEntry {
	index := make(map[Domain]map[string]CatalogEntry, len(catalogs))
	for domain, entries := range catalogs {
		byKey := make(map[string]CatalogEntry, len(entries))
		for _, e := range entries {
			byKey[e.Key] = e
		}
		index[domain] = byKey
	}
	return index
}

// Catalog returns the fixed entry table for a domain.
func Catalog(domain Domain) []CatalogEntry {
	return catalogs[domain]
}

// Lookup finds the catalog entry for a key within a domain.
func Lookup(domain Domain, key string) (CatalogEntry, bool) {
	e, ok := catalogIndex[domain][key]
	return e, ok
}

// Label resolves the display label for a key. Unknown keys pass through
// using the raw key itself.
func Label(domain Domain, key string) string {
	if e, ok := Lookup(domain, key); ok {
		return e.Label
	}
	return key
}

// SortKeys orders keys by catalog order; unknown keys sort after every
// cataloged key, alphabetically among themselves.
func SortKeys(domain Domain, keys []string) []string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		ei, oki := Lookup(domain, sorted[i])
		ej, okj := Lookup(domain, sorted[j])
		if oki && okj {
			return ei.Order < ej.Order
		}
		if oki != okj {
			return oki
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
