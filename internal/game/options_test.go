package game

import (
	"testing"

	"github.com/statattack/statattack/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestOptions_WithMaxGuesses(t *testing.T) {
	opts, err := DefaultOptions().WithMaxGuesses(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, opts.MaxGuesses)

	opts, err = opts.WithMaxGuesses(UnlimitedGuesses)
	assert.NoError(t, err)
	assert.Equal(t, 0, opts.MaxGuesses)
}

func TestOptions_WithMaxGuesses_RejectsNegative(t *testing.T) {
	opts := DefaultOptions()
	next, err := opts.WithMaxGuesses(-1)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
	// Rejected change leaves the draft untouched.
	assert.Equal(t, opts, next)
}

func TestOptions_HintPreservesText(t *testing.T) {
	opts := DefaultOptions().WithHintText("played in Anaheim")
	opts = opts.WithHintEnabled(true)
	assert.Equal(t, "played in Anaheim", opts.Hint.Text)

	opts = opts.WithHintEnabled(false)
	opts = opts.WithHintEnabled(true)
	assert.Equal(t, "played in Anaheim", opts.Hint.Text)
}

func TestOptions_HintEnabledWithoutText(t *testing.T) {
	opts := DefaultOptions().WithHintEnabled(true)
	assert.True(t, opts.Hint.Enabled)
	assert.Equal(t, "", opts.Hint.Text)
}

func TestOptions_ProgressiveReveal_SeedsDefaults(t *testing.T) {
	opts := DefaultOptions().WithProgressiveReveal(true)

	reveal := opts.ProgressiveReveal
	assert.True(t, reveal.Enabled)
	assert.Equal(t, 1, reveal.StatsPerReveal)
	assert.Equal(t, DefaultProtectedStats, reveal.ProtectedStats)
	assert.Empty(t, reveal.OrderedStats.Info)
	assert.Empty(t, reveal.OrderedStats.Hitting)
	assert.Empty(t, reveal.OrderedStats.Pitching)
}

func TestOptions_ProgressiveReveal_ReEnablePreservesConfig(t *testing.T) {
	opts := DefaultOptions().WithProgressiveReveal(true)
	opts, err := opts.WithStatsPerReveal(3)
	assert.NoError(t, err)
	opts, err = opts.WithOrderedStats(stats.DomainHitting, []string{"homeRuns", "avg"})
	assert.NoError(t, err)

	opts = opts.WithProgressiveReveal(false)
	assert.False(t, opts.ProgressiveReveal.Enabled)

	opts = opts.WithProgressiveReveal(true)
	assert.True(t, opts.ProgressiveReveal.Enabled)
	assert.Equal(t, 3, opts.ProgressiveReveal.StatsPerReveal)
	assert.Equal(t, []string{"homeRuns", "avg"}, opts.ProgressiveReveal.OrderedStats.Hitting)
}

func TestOptions_WithStatsPerReveal_RejectsZero(t *testing.T) {
	opts := DefaultOptions().WithProgressiveReveal(true)
	_, err := opts.WithStatsPerReveal(0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1")
}

func TestOptions_OrderedRevealSnapshotsDeselected(t *testing.T) {
	cfg := StatsConfig{
		Hitting: stats.Partition{
			Selected:   []string{"gamesPlayed"},
			Deselected: []string{"avg", "homeRuns", "rbi"},
		},
	}

	opts := DefaultOptions().WithProgressiveReveal(true)
	opts = opts.WithOrderedReveal(true, cfg)

	assert.True(t, opts.ProgressiveReveal.UseOrderedReveal)
	assert.Equal(t, []string{"avg", "homeRuns", "rbi"}, opts.ProgressiveReveal.OrderedStats.Hitting)
}

func TestOptions_OrderedRevealSnapshotDoesNotTrackPartition(t *testing.T) {
	cfg := StatsConfig{
		Hitting: stats.Partition{
			Selected:   []string{},
			Deselected: []string{"avg", "homeRuns"},
		},
	}

	opts := DefaultOptions().WithProgressiveReveal(true)
	opts = opts.WithOrderedReveal(true, cfg)
	snapshot := opts.ProgressiveReveal.OrderedStats.Hitting

	// Toggling a stat after enabling ordered reveal must not alter the
	// captured order.
	toggled, err := cfg.Hitting.Toggle("avg")
	assert.NoError(t, err)
	cfg.Hitting = toggled

	assert.Equal(t, snapshot, opts.ProgressiveReveal.OrderedStats.Hitting)
	assert.Equal(t, []string{"avg", "homeRuns"}, opts.ProgressiveReveal.OrderedStats.Hitting)
}

func TestOptions_OrderedRevealSnapshotExcludesProtected(t *testing.T) {
	cfg := StatsConfig{
		Info: stats.Partition{
			Selected:   []string{},
			Deselected: []string{"birthCity", "fullName", "imageUrl"},
		},
	}

	opts := DefaultOptions().WithProgressiveReveal(true)
	opts = opts.WithOrderedReveal(true, cfg)

	assert.Equal(t, []string{"birthCity"}, opts.ProgressiveReveal.OrderedStats.Info)
}

func TestOptions_WithOrderedStats_RejectsProtectedKeys(t *testing.T) {
	opts := DefaultOptions().WithProgressiveReveal(true)

	_, err := opts.WithOrderedStats(stats.DomainInfo, []string{"birthCity", "fullName"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "protected stat")
}

func TestOptions_Validate(t *testing.T) {
	opts := DefaultOptions().WithProgressiveReveal(true)
	assert.NoError(t, opts.Validate())

	bad := opts
	reveal := *bad.ProgressiveReveal
	reveal.OrderedStats.Info = []string{"fullName"}
	bad.ProgressiveReveal = &reveal
	assert.Error(t, bad.Validate())

	negative := Options{MaxGuesses: -2}
	assert.Error(t, negative.Validate())
}

func TestOptions_MutationsArePure(t *testing.T) {
	base := DefaultOptions().WithProgressiveReveal(true)
	before := *base.ProgressiveReveal

	next, err := base.WithStatsPerReveal(5)
	assert.NoError(t, err)
	assert.Equal(t, before, *base.ProgressiveReveal)
	assert.Equal(t, 5, next.ProgressiveReveal.StatsPerReveal)
}
