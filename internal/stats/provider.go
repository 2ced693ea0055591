package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/statattack/statattack/internal/apperrors"
)

const DefaultBaseURL = "https://statsapi.mlb.com/api/v1"

// infoFields are the person fields carried into the playerInfo map.
// Everything else on the upstream person object (links, nested roster
// data) is noise for the guessing game.
var infoFields = []string{
	"fullName", "imageUrl", "currentTeam", "useFirstName", "useLastName",
	"middleName", "nickName", "primaryPosition", "primaryNumber",
	"birthDate", "birthCity", "birthStateProvince", "birthCountry",
	"height", "weight", "batSide", "pitchHand", "mlbDebutDate", "draftYear",
}

// Client fetches player statistics from the MLB Stats API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SearchPlayers looks up players by name.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]PlayerSummary, error) {
	u := fmt.Sprintf("%s/people/search?names=%s", c.baseURL, url.QueryEscape(name))

	raw, err := c.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	people, ok := raw["people"].([]interface{})
	if !ok {
		return nil, apperrors.NewAppError(502, "player statistics provider returned malformed data", fmt.Errorf("missing people array in %s", u))
	}

	summaries := make([]PlayerSummary, 0, len(people))
	for _, p := range people {
		person, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		summary := PlayerSummary{
			FullName: stringField(person, "fullName"),
		}
		if id, ok := person["id"].(float64); ok {
			summary.ID = int(id)
		}
		if team, ok := person["currentTeam"].(map[string]interface{}); ok {
			summary.CurrentTeam = stringField(team, "name")
		}
		if pos, ok := person["primaryPosition"].(map[string]interface{}); ok {
			summary.Position = stringField(pos, "name")
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// LoadPlayerStats loads a player's identity fields and year-by-year
// hitting and pitching lines. The load is all-or-nothing: any malformed
// domain fails the whole call so game configuration never starts from a
// partial payload.
func (c *Client) LoadPlayerStats(ctx context.Context, playerID int) (*PlayerStats, error) {
	u := fmt.Sprintf("%s/people/%d?hydrate=stats(group=[hitting,pitching],type=[yearByYear])", c.baseURL, playerID)

	raw, err := c.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	people, ok := raw["people"].([]interface{})
	if !ok || len(people) == 0 {
		return nil, apperrors.NewAppError(404, "player not found", fmt.Errorf("empty people array for player %d", playerID))
	}
	person, ok := people[0].(map[string]interface{})
	if !ok {
		return nil, apperrors.NewAppError(502, "player statistics provider returned malformed data", fmt.Errorf("person %d is not an object", playerID))
	}

	stats := &PlayerStats{
		PlayerInfo:    extractInfo(person),
		HittingStats:  []map[string]interface{}{},
		PitchingStats: []map[string]interface{}{},
	}

	groups, _ := person["stats"].([]interface{})
	for _, g := range groups {
		group, ok := g.(map[string]interface{})
		if !ok {
			return nil, malformedStats(playerID)
		}
		name := groupName(group)
		if name != "hitting" && name != "pitching" {
			continue
		}
		seasons, err := extractSeasons(group)
		if err != nil {
			return nil, malformedStats(playerID)
		}
		if name == "hitting" {
			stats.HittingStats = seasons
		} else {
			stats.PitchingStats = seasons
		}
	}

	return stats, nil
}

func (c *Client) fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error building provider request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewAppError(502, "player statistics provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperrors.NewAppError(502, "player statistics provider unavailable",
			fmt.Errorf("status=%d body=%s", resp.StatusCode, string(body)))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.NewAppError(502, "player statistics provider returned malformed data", err)
	}

	return result, nil
}

func extractInfo(person map[string]interface{}) map[string]interface{} {
	info := make(map[string]interface{})
	for _, field := range infoFields {
		value, ok := person[field]
		if !ok {
			continue
		}
		// currentTeam and primaryPosition arrive as objects; flatten to
		// their display names.
		if nested, ok := value.(map[string]interface{}); ok {
			info[field] = stringField(nested, "name")
			continue
		}
		info[field] = value
	}
	return info
}

func extractSeasons(group map[string]interface{}) ([]map[string]interface{}, error) {
	splits, ok := group["splits"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("missing splits")
	}
	seasons := make([]map[string]interface{}, 0, len(splits))
	for _, s := range splits {
		split, ok := s.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("split is not an object")
		}
		stat, ok := split["stat"].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("split has no stat object")
		}
		season := make(map[string]interface{}, len(stat)+1)
		for k, v := range stat {
			season[k] = v
		}
		if s, ok := split["season"].(string); ok {
			season["season"] = s
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

func groupName(group map[string]interface{}) string {
	g, ok := group["group"].(map[string]interface{})
	if !ok {
		return ""
	}
	return stringField(g, "displayName")
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func malformedStats(playerID int) error {
	return apperrors.NewAppError(502, "player statistics provider returned malformed data",
		fmt.Errorf("malformed stats payload for player %d", playerID))
}
