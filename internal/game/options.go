package game

import (
	"sort"

	"github.com/statattack/statattack/internal/apperrors"
	"github.com/statattack/statattack/internal/stats"
)

// UnlimitedGuesses is the maxGuesses sentinel for no guess budget.
const UnlimitedGuesses = 0

// DefaultProtectedStats are identity-revealing keys that progressive
// reveal must never unveil. Seeded the first time progressive reveal is
// enabled on a draft.
var DefaultProtectedStats = []string{
	"fullName",
	"imageUrl",
	"currentTeam",
	"useFirstName",
	"useLastName",
	"middleName",
	"nickName",
}

type Hint struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
}

type OrderedStats struct {
	Info     []string `json:"info"`
	Hitting  []string `json:"hitting"`
	Pitching []string `json:"pitching"`
}

func (o OrderedStats) Domain(domain stats.Domain) []string {
	switch domain {
	case stats.DomainInfo:
		return o.Info
	case stats.DomainHitting:
		return o.Hitting
	case stats.DomainPitching:
		return o.Pitching
	}
	return nil
}

type ProgressiveReveal struct {
	Enabled          bool         `json:"enabled"`
	StatsPerReveal   int          `json:"statsPerReveal"`
	ProtectedStats   []string     `json:"protectedStats"`
	OrderedStats     OrderedStats `json:"orderedStats"`
	UseOrderedReveal bool         `json:"useOrderedReveal"`
}

// Options are the gameplay parameters of a draft, frozen at game
// creation. All mutations below are pure: they return the next value and
// leave the receiver untouched, so a rejected change cannot corrupt the
// draft.
type Options struct {
	MaxGuesses        int                `json:"maxGuesses"`
	Hint              *Hint              `json:"hint,omitempty"`
	ProgressiveReveal *ProgressiveReveal `json:"progressiveReveal,omitempty"`
}

func DefaultOptions() Options {
	return Options{MaxGuesses: UnlimitedGuesses}
}

// WithMaxGuesses sets the guess budget. Zero means unlimited; negative
// budgets are rejected.
func (o Options) WithMaxGuesses(n int) (Options, error) {
	if n < 0 {
		return o, apperrors.NewAppError(400, "maxGuesses must not be negative", nil)
	}
	o.MaxGuesses = n
	return o, nil
}

// WithHintEnabled toggles the hint, preserving any text already typed.
func (o Options) WithHintEnabled(enabled bool) Options {
	hint := Hint{Enabled: enabled}
	if o.Hint != nil {
		hint.Text = o.Hint.Text
	}
	o.Hint = &hint
	return o
}

func (o Options) WithHintText(text string) Options {
	hint := Hint{Text: text}
	if o.Hint != nil {
		hint.Enabled = o.Hint.Enabled
	}
	o.Hint = &hint
	return o
}

// WithProgressiveReveal toggles progressive reveal. The first enable
// seeds the protected-stat defaults and empty per-domain orders; a
// re-enable keeps whatever was configured before the disable.
func (o Options) WithProgressiveReveal(enabled bool) Options {
	if o.ProgressiveReveal == nil {
		o.ProgressiveReveal = &ProgressiveReveal{
			StatsPerReveal: 1,
			ProtectedStats: append([]string{}, DefaultProtectedStats...),
			OrderedStats: OrderedStats{
				Info:     []string{},
				Hitting:  []string{},
				Pitching: []string{},
			},
		}
	}
	reveal := *o.ProgressiveReveal
	reveal.Enabled = enabled
	o.ProgressiveReveal = &reveal
	return o
}

// WithStatsPerReveal sets how many hidden stats each wrong guess
// unveils. The UI clamps this to [1,5]; the model only requires it to be
// positive.
func (o Options) WithStatsPerReveal(n int) (Options, error) {
	if n < 1 {
		return o, apperrors.NewAppError(400, "statsPerReveal must be at least 1", nil)
	}
	next := o.WithProgressiveReveal(o.revealEnabled())
	reveal := *next.ProgressiveReveal
	reveal.StatsPerReveal = n
	next.ProgressiveReveal = &reveal
	return next, nil
}

// WithOrderedReveal turns ordered reveal on or off. Turning it on
// snapshots the draft's current deselected sets (minus protected keys)
// as the reveal order. The snapshot is deliberate: later partition
// changes do not resync the order.
func (o Options) WithOrderedReveal(enabled bool, cfg StatsConfig) Options {
	next := o.WithProgressiveReveal(o.revealEnabled())
	reveal := *next.ProgressiveReveal
	reveal.UseOrderedReveal = enabled
	if enabled {
		reveal.OrderedStats = OrderedStats{
			Info:     revealableKeys(cfg.Info, reveal.ProtectedStats),
			Hitting:  revealableKeys(cfg.Hitting, reveal.ProtectedStats),
			Pitching: revealableKeys(cfg.Pitching, reveal.ProtectedStats),
		}
	}
	next.ProgressiveReveal = &reveal
	return next
}

// WithOrderedStats replaces the explicit reveal order for one domain.
// Protected keys cannot be scheduled for reveal.
func (o Options) WithOrderedStats(domain stats.Domain, keys []string) (Options, error) {
	next := o.WithProgressiveReveal(o.revealEnabled())
	reveal := *next.ProgressiveReveal
	for _, k := range keys {
		if containsKey(reveal.ProtectedStats, k) {
			return o, apperrors.NewAppError(400, "protected stat cannot be in the reveal order: "+k, nil)
		}
	}
	ordered := reveal.OrderedStats
	switch domain {
	case stats.DomainInfo:
		ordered.Info = append([]string{}, keys...)
	case stats.DomainHitting:
		ordered.Hitting = append([]string{}, keys...)
	case stats.DomainPitching:
		ordered.Pitching = append([]string{}, keys...)
	default:
		return o, apperrors.NewAppError(400, "unknown stat domain: "+string(domain), nil)
	}
	reveal.OrderedStats = ordered
	next.ProgressiveReveal = &reveal
	return next, nil
}

// Validate checks a full Options value as it arrives from a client or
// from a persisted row. Fails closed on any invariant break.
func (o Options) Validate() error {
	if o.MaxGuesses < 0 {
		return apperrors.NewAppError(400, "maxGuesses must not be negative", nil)
	}
	reveal := o.ProgressiveReveal
	if reveal == nil {
		return nil
	}
	if reveal.StatsPerReveal < 1 {
		return apperrors.NewAppError(400, "statsPerReveal must be at least 1", nil)
	}
	for _, domain := range stats.Domains() {
		for _, k := range reveal.OrderedStats.Domain(domain) {
			if containsKey(reveal.ProtectedStats, k) {
				return apperrors.NewAppError(400, "protected stat cannot be in the reveal order: "+k, nil)
			}
		}
	}
	return nil
}

func (o Options) revealEnabled() bool {
	return o.ProgressiveReveal != nil && o.ProgressiveReveal.Enabled
}

func (o Options) hintText() string {
	if o.Hint == nil || !o.Hint.Enabled {
		return ""
	}
	return o.Hint.Text
}

func revealableKeys(p stats.Partition, protected []string) []string {
	keys := make([]string, 0, len(p.Deselected))
	for _, k := range p.Deselected {
		if !containsKey(protected, k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
