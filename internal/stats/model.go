package stats

// Domain partitions statistic keys by category.
type Domain string

const (
	DomainInfo     Domain = "info"
	DomainHitting  Domain = "hitting"
	DomainPitching Domain = "pitching"
)

func Domains() []Domain {
	return []Domain{DomainInfo, DomainHitting, DomainPitching}
}

// PlayerStats is the raw upstream payload for one player: a flat map of
// identity fields plus one stat map per season for each playing domain.
type PlayerStats struct {
	PlayerInfo    map[string]interface{}   `json:"playerInfo"`
	HittingStats  []map[string]interface{} `json:"hittingStats"`
	PitchingStats []map[string]interface{} `json:"pitchingStats"`
}

// DomainKeys returns every stat key present in the payload for a domain.
// Season rows are unioned so a stat that only appears in some seasons is
// still part of the domain's key set.
func (p *PlayerStats) DomainKeys(domain Domain) []string {
	switch domain {
	case DomainInfo:
		keys := make([]string, 0, len(p.PlayerInfo))
		for k := range p.PlayerInfo {
			keys = append(keys, k)
		}
		return SortKeys(domain, keys)
	case DomainHitting:
		return seasonKeys(domain, p.HittingStats)
	case DomainPitching:
		return seasonKeys(domain, p.PitchingStats)
	}
	return nil
}

func seasonKeys(domain Domain, seasons []map[string]interface{}) []string {
	seen := make(map[string]bool)
	keys := []string{}
	for _, season := range seasons {
		for k := range season {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return SortKeys(domain, keys)
}

type PlayerSummary struct {
	ID          int    `json:"id"`
	FullName    string `json:"fullName"`
	CurrentTeam string `json:"currentTeam,omitempty"`
	Position    string `json:"position,omitempty"`
}
