package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/statattack/statattack/internal/stats"
	"github.com/stretchr/testify/assert"
)

func limitedOptions(maxGuesses int) Options {
	opts, _ := DefaultOptions().WithMaxGuesses(maxGuesses)
	return opts
}

func TestSession_ThreeWrongGuessesExhaustBudget(t *testing.T) {
	sess := NewSession(limitedOptions(3))

	assert.NoError(t, sess.ApplyGuess(OutcomeIncorrect))
	assert.Equal(t, StateGuessing, sess.State)
	assert.NoError(t, sess.ApplyGuess(OutcomeIncorrect))
	assert.Equal(t, StateGuessing, sess.State)
	assert.NoError(t, sess.ApplyGuess(OutcomeIncorrect))
	assert.Equal(t, StateGaveUp, sess.State)
	assert.True(t, sess.Terminal())
}

func TestSession_CorrectGuessWinsOnLastAttempt(t *testing.T) {
	sess := NewSession(limitedOptions(3))

	assert.NoError(t, sess.ApplyGuess(OutcomeIncorrect))
	assert.NoError(t, sess.ApplyGuess(OutcomeIncorrect))
	assert.NoError(t, sess.ApplyGuess(OutcomeCorrect))
	assert.Equal(t, StateCorrect, sess.State)
}

func TestSession_UnlimitedGuessesNeverExhaust(t *testing.T) {
	sess := NewSession(limitedOptions(UnlimitedGuesses))

	for i := 0; i < 50; i++ {
		assert.NoError(t, sess.ApplyGuess(OutcomeIncorrect))
	}
	assert.Equal(t, StateGuessing, sess.State)
	assert.False(t, sess.Terminal())

	assert.NoError(t, sess.GiveUp())
	assert.Equal(t, StateGaveUp, sess.State)
}

func TestSession_TerminalStatesAreAbsorbing(t *testing.T) {
	sess := NewSession(limitedOptions(0))
	assert.NoError(t, sess.ApplyGuess(OutcomeCorrect))

	err := sess.ApplyGuess(OutcomeIncorrect)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no further guesses accepted")
	assert.Equal(t, StateCorrect, sess.State)

	assert.Error(t, sess.GiveUp())
	assert.Equal(t, StateCorrect, sess.State)
}

func TestSession_GiveUpFromInitial(t *testing.T) {
	sess := NewSession(limitedOptions(5))
	assert.Equal(t, StateInitial, sess.State)
	assert.NoError(t, sess.GiveUp())
	assert.Equal(t, StateGaveUp, sess.State)
}

func TestReconstructSession(t *testing.T) {
	sess, err := ReconstructSession(limitedOptions(3), 0, "")
	assert.NoError(t, err)
	assert.Equal(t, StateInitial, sess.State)

	sess, err = ReconstructSession(limitedOptions(3), 2, StateGuessing)
	assert.NoError(t, err)
	assert.Equal(t, StateGuessing, sess.State)

	// A reported count at the budget is already terminal.
	sess, err = ReconstructSession(limitedOptions(3), 3, StateGuessing)
	assert.NoError(t, err)
	assert.Equal(t, StateGaveUp, sess.State)

	_, err = ReconstructSession(limitedOptions(3), -1, StateGuessing)
	assert.Error(t, err)

	_, err = ReconstructSession(limitedOptions(3), 1, "bogus")
	assert.Error(t, err)
}

func revealConfig() StatsConfig {
	return StatsConfig{
		Info: stats.Partition{
			Selected:   []string{"height", "weight"},
			Deselected: []string{"birthCity", "birthCountry", "fullName"},
		},
		Hitting: stats.Partition{
			Selected:   []string{"gamesPlayed"},
			Deselected: []string{"avg", "homeRuns", "ops", "rbi"},
		},
		Pitching: stats.Partition{
			Selected:   []string{},
			Deselected: []string{"era", "wins"},
		},
	}
}

func TestVisibleKeys_InitialStateShowsSelectedAndProtected(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions().WithProgressiveReveal(true)
	sess := NewSession(opts)

	info := VisibleKeys(cfg, opts, stats.DomainInfo, sess, 1)
	// fullName is deselected but protected, so it stays visible.
	assert.ElementsMatch(t, []string{"height", "weight", "fullName"}, info)

	hitting := VisibleKeys(cfg, opts, stats.DomainHitting, sess, 1)
	assert.ElementsMatch(t, []string{"gamesPlayed"}, hitting)
}

func TestVisibleKeys_OrderedRevealFollowsConfiguredOrder(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions().WithProgressiveReveal(true)
	opts, err := opts.WithOrderedStats(stats.DomainHitting, []string{"ops", "avg", "homeRuns", "rbi"})
	assert.NoError(t, err)
	reveal := *opts.ProgressiveReveal
	reveal.UseOrderedReveal = true
	opts.ProgressiveReveal = &reveal

	sess, _ := ReconstructSession(opts, 2, StateGuessing)
	visible := VisibleKeys(cfg, opts, stats.DomainHitting, sess, 1)

	// Two wrong guesses at one stat each: ops first, then avg.
	assert.ElementsMatch(t, []string{"gamesPlayed", "ops", "avg"}, visible)
}

func TestVisibleKeys_StatsPerRevealMultiplies(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions().WithProgressiveReveal(true)
	opts, err := opts.WithStatsPerReveal(2)
	assert.NoError(t, err)

	sess, _ := ReconstructSession(opts, 1, StateGuessing)
	visible := VisibleKeys(cfg, opts, stats.DomainHitting, sess, 99)

	// 1 selected + 2 revealed after one wrong guess.
	assert.Len(t, visible, 3)
}

func TestVisibleKeys_RandomOrderIsStablePerSeed(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions().WithProgressiveReveal(true)
	sess, _ := ReconstructSession(opts, 2, StateGuessing)

	first := VisibleKeys(cfg, opts, stats.DomainHitting, sess, 42)
	second := VisibleKeys(cfg, opts, stats.DomainHitting, sess, 42)
	assert.Equal(t, first, second)
}

func TestVisibleKeys_RevealDisabledShowsNothingExtra(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions()
	sess, _ := ReconstructSession(opts, 4, StateGuessing)

	visible := VisibleKeys(cfg, opts, stats.DomainHitting, sess, 1)
	assert.ElementsMatch(t, []string{"gamesPlayed"}, visible)
}

func TestVisibleKeys_TerminalRevealsEverything(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions()
	sess := NewSession(opts)
	assert.NoError(t, sess.GiveUp())

	for _, domain := range stats.Domains() {
		p := cfg.Partition(domain)
		visible := VisibleKeys(cfg, opts, domain, sess, 1)
		assert.Len(t, visible, len(p.Selected)+len(p.Deselected))
	}
}

func TestRevealedKeys_NeverRevealsProtected(t *testing.T) {
	p := stats.Partition{
		Selected:   []string{},
		Deselected: []string{"birthCity", "fullName", "imageUrl", "birthCountry"},
	}
	opts := DefaultOptions().WithProgressiveReveal(true)
	opts, _ = opts.WithStatsPerReveal(4)

	revealed := RevealedKeys(p, opts, stats.DomainInfo, 5, 7)
	assert.NotContains(t, revealed, "fullName")
	assert.NotContains(t, revealed, "imageUrl")
	assert.ElementsMatch(t, []string{"birthCity", "birthCountry"}, revealed)
}

func TestRevealedKeys_StaleOrderedSnapshotSkipsSelectedKeys(t *testing.T) {
	// The ordered list was captured before "ops" was re-selected; the
	// evaluator must skip it rather than reveal a visible stat twice.
	p := stats.Partition{
		Selected:   []string{"ops"},
		Deselected: []string{"avg", "homeRuns"},
	}
	opts := DefaultOptions().WithProgressiveReveal(true)
	opts, _ = opts.WithOrderedStats(stats.DomainHitting, []string{"ops", "avg", "homeRuns"})
	reveal := *opts.ProgressiveReveal
	reveal.UseOrderedReveal = true
	opts.ProgressiveReveal = &reveal

	revealed := RevealedKeys(p, opts, stats.DomainHitting, 1, 1)
	assert.Equal(t, []string{"avg"}, revealed)
}

func TestBuildPlayView_StripsHiddenValues(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions()
	sess := NewSession(opts)

	raw := &stats.PlayerStats{
		PlayerInfo: map[string]interface{}{
			"height":    "6' 2\"",
			"weight":    235,
			"birthCity": "Vineland",
			"fullName":  "Mike Trout",
		},
		HittingStats: []map[string]interface{}{
			{"gamesPlayed": 159, "avg": ".291", "homeRuns": 45},
		},
	}

	view := BuildPlayView(raw, cfg, opts, sess, Seed(uuid.New()))

	assert.Contains(t, view.PlayerInfo, "height")
	assert.NotContains(t, view.PlayerInfo, "birthCity")
	assert.NotContains(t, view.PlayerInfo, "fullName")
	assert.Contains(t, view.HittingStats[0], "gamesPlayed")
	assert.NotContains(t, view.HittingStats[0], "avg")
}

func TestBuildPlayView_UnclassifiedKeysPassThrough(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions()
	sess := NewSession(opts)

	raw := &stats.PlayerStats{
		HittingStats: []map[string]interface{}{
			{"gamesPlayed": 159, "babip": ".298"},
		},
	}

	view := BuildPlayView(raw, cfg, opts, sess, 1)
	assert.Contains(t, view.HittingStats[0], "babip")
}

func TestBuildPlayView_TerminalShowsEverything(t *testing.T) {
	cfg := revealConfig()
	opts := DefaultOptions()
	sess := NewSession(opts)
	assert.NoError(t, sess.ApplyGuess(OutcomeCorrect))

	raw := &stats.PlayerStats{
		PlayerInfo: map[string]interface{}{
			"height":    "6' 2\"",
			"birthCity": "Vineland",
			"fullName":  "Mike Trout",
		},
	}

	view := BuildPlayView(raw, cfg, opts, sess, 1)
	assert.Equal(t, raw.PlayerInfo, view.PlayerInfo)
}

func TestSeed_StablePerGame(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, Seed(id), Seed(id))
	assert.NotEqual(t, Seed(id), Seed(uuid.New()))
}
