package game

import (
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
	"github.com/statattack/statattack/internal/apperrors"
	"github.com/statattack/statattack/internal/stats"
)

type SessionState string

const (
	StateInitial  SessionState = "initial"
	StateGuessing SessionState = "guessing"
	StateCorrect  SessionState = "correct"
	StateGaveUp   SessionState = "gaveUp"
)

// Session is one play attempt against a game. It lives with the guesser,
// not in the database; the server reconstructs it from the guess count
// and state the client reports, applies the transition, and hands it back.
type Session struct {
	MaxGuesses   int          `json:"maxGuesses"`
	WrongGuesses int          `json:"wrongGuesses"`
	State        SessionState `json:"state"`
}

func NewSession(opts Options) *Session {
	return &Session{
		MaxGuesses: opts.MaxGuesses,
		State:      StateInitial,
	}
}

// ReconstructSession rebuilds a session from client-reported progress.
// A wrong-guess count at or past a finite budget is already terminal.
func ReconstructSession(opts Options, wrongGuesses int, state SessionState) (*Session, error) {
	if wrongGuesses < 0 {
		return nil, apperrors.NewAppError(400, "guess count must not be negative", nil)
	}
	sess := &Session{
		MaxGuesses:   opts.MaxGuesses,
		WrongGuesses: wrongGuesses,
		State:        StateGuessing,
	}
	switch state {
	case StateCorrect, StateGaveUp:
		sess.State = state
	case StateInitial, StateGuessing, "":
		if wrongGuesses == 0 {
			sess.State = StateInitial
		}
		if sess.MaxGuesses > UnlimitedGuesses && wrongGuesses >= sess.MaxGuesses {
			sess.State = StateGaveUp
		}
	default:
		return nil, apperrors.NewAppError(400, "unknown session state: "+string(state), nil)
	}
	return sess, nil
}

func (s *Session) Terminal() bool {
	return s.State == StateCorrect || s.State == StateGaveUp
}

// ApplyGuess advances the state machine by one judged guess. A correct
// guess wins from any non-terminal state regardless of remaining budget;
// exhausting a finite budget gives the session up. Terminal states are
// absorbing.
func (s *Session) ApplyGuess(outcome Outcome) error {
	if s.Terminal() {
		return apperrors.NewAppError(409, "session is over, no further guesses accepted", nil)
	}

	if outcome == OutcomeCorrect {
		s.State = StateCorrect
		return nil
	}

	s.WrongGuesses++
	if s.MaxGuesses > UnlimitedGuesses && s.WrongGuesses >= s.MaxGuesses {
		s.State = StateGaveUp
	} else {
		s.State = StateGuessing
	}
	return nil
}

// GiveUp ends the session from any non-terminal state.
func (s *Session) GiveUp() error {
	if s.Terminal() {
		return apperrors.NewAppError(409, "session is over", nil)
	}
	s.State = StateGaveUp
	return nil
}

// Seed derives the per-game shuffle seed for randomized reveal order.
// Deriving it from the game ID keeps the random order stable across
// requests within one game.
func Seed(gameID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(gameID[:])
	return int64(h.Sum64())
}

// RevealedKeys returns the hidden keys unveiled after the given number
// of wrong guesses, in reveal order. Protected keys are never candidates.
func RevealedKeys(p stats.Partition, opts Options, domain stats.Domain, wrongGuesses int, seed int64) []string {
	reveal := opts.ProgressiveReveal
	if reveal == nil || !reveal.Enabled || wrongGuesses <= 0 {
		return []string{}
	}

	var order []string
	if reveal.UseOrderedReveal {
		order = reveal.OrderedStats.Domain(domain)
	} else {
		order = shuffledKeys(revealableKeys(p, reveal.ProtectedStats), seed, domain)
	}

	budget := reveal.StatsPerReveal * wrongGuesses
	revealed := make([]string, 0, budget)
	for _, k := range order {
		if len(revealed) == budget {
			break
		}
		// The order may be a stale snapshot; only keys still hidden count.
		if containsKey(p.Deselected, k) && !containsKey(reveal.ProtectedStats, k) {
			revealed = append(revealed, k)
		}
	}
	return revealed
}

// VisibleKeys computes every key of a domain the guesser may currently
// see: the selected set, protected keys (never hidden), and whatever
// progressive reveal has unveiled. Terminal sessions see everything.
func VisibleKeys(cfg StatsConfig, opts Options, domain stats.Domain, sess *Session, seed int64) []string {
	p := cfg.Partition(domain)

	if sess.Terminal() {
		all := append([]string{}, p.Selected...)
		all = append(all, p.Deselected...)
		return stats.SortKeys(domain, all)
	}

	visible := append([]string{}, p.Selected...)
	for _, k := range p.Deselected {
		if opts.ProgressiveReveal != nil && containsKey(opts.ProgressiveReveal.ProtectedStats, k) {
			visible = append(visible, k)
		}
	}
	visible = append(visible, RevealedKeys(p, opts, domain, sess.WrongGuesses, seed)...)
	return stats.SortKeys(domain, visible)
}

// BuildPlayView filters a raw stats payload down to what the session is
// allowed to see. Keys the partition has never classified pass through
// untouched.
func BuildPlayView(raw *stats.PlayerStats, cfg StatsConfig, opts Options, sess *Session, seed int64) *stats.PlayerStats {
	view := &stats.PlayerStats{
		PlayerInfo:    filterMap(raw.PlayerInfo, cfg.Info, visibleSet(cfg, opts, stats.DomainInfo, sess, seed)),
		HittingStats:  filterSeasons(raw.HittingStats, cfg.Hitting, visibleSet(cfg, opts, stats.DomainHitting, sess, seed)),
		PitchingStats: filterSeasons(raw.PitchingStats, cfg.Pitching, visibleSet(cfg, opts, stats.DomainPitching, sess, seed)),
	}
	return view
}

func visibleSet(cfg StatsConfig, opts Options, domain stats.Domain, sess *Session, seed int64) map[string]bool {
	visible := make(map[string]bool)
	for _, k := range VisibleKeys(cfg, opts, domain, sess, seed) {
		visible[k] = true
	}
	return visible
}

func filterMap(values map[string]interface{}, p stats.Partition, visible map[string]bool) map[string]interface{} {
	filtered := make(map[string]interface{}, len(values))
	for k, v := range values {
		if visible[k] || !p.Has(k) {
			filtered[k] = v
		}
	}
	return filtered
}

func filterSeasons(seasons []map[string]interface{}, p stats.Partition, visible map[string]bool) []map[string]interface{} {
	filtered := make([]map[string]interface{}, 0, len(seasons))
	for _, season := range seasons {
		filtered = append(filtered, filterMap(season, p, visible))
	}
	return filtered
}

func shuffledKeys(keys []string, seed int64, domain stats.Domain) []string {
	h := fnv.New64a()
	h.Write([]byte(domain))
	rng := rand.New(rand.NewSource(seed ^ int64(h.Sum64())))

	shuffled := make([]string, len(keys))
	copy(shuffled, keys)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
