package game

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *GormGameRepository {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("error opening test database: %v", err)
	}
	if err := db.AutoMigrate(&Game{}, &PlayerConfig{}, &GuessRecord{}); err != nil {
		t.Fatalf("error migrating test database: %v", err)
	}
	return NewGormGameRepository(db)
}

func newGameAndConfig(creatorID *uint) (*Game, *PlayerConfig) {
	game := &Game{
		ID:        uuid.New(),
		Title:     "Guess the outfielder",
		CreatorID: creatorID,
	}
	config := &PlayerConfig{
		ID:          uuid.New(),
		PlayerID:    545361,
		StatsConfig: sampleConfig(),
		GameOptions: sampleOptions(),
	}
	return game, config
}

func TestGormGameRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	creator := uint(7)
	game, config := newGameAndConfig(&creator)

	created, err := repo.CreateGame(game, config)
	assert.NoError(t, err)
	assert.Equal(t, game.ID, created.ID)

	loaded, err := repo.GetGame(game.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Guess the outfielder", loaded.Title)
	assert.NotNil(t, loaded.Config)
	assert.Equal(t, 545361, loaded.Config.PlayerID)
	assert.Equal(t, sampleConfig(), loaded.Config.StatsConfig)
	assert.Equal(t, sampleOptions(), loaded.Config.GameOptions)
}

func TestGormGameRepository_CreateGame_ConfigFailureRollsBackGame(t *testing.T) {
	repo := newTestRepository(t)

	// Occupy the config primary key so the second insert fails after
	// the game row is already written inside the transaction.
	firstGame, firstConfig := newGameAndConfig(nil)
	_, err := repo.CreateGame(firstGame, firstConfig)
	assert.NoError(t, err)

	game, config := newGameAndConfig(nil)
	config.ID = firstConfig.ID

	created, err := repo.CreateGame(game, config)
	assert.Nil(t, created)
	assert.Error(t, err)

	// No orphan game may survive a failed config insert.
	_, err = repo.GetGame(game.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Game not found")
}

func TestGormGameRepository_GetGame_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetGame(uuid.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Game not found")
}

func TestGormGameRepository_GetGames_Pagination(t *testing.T) {
	repo := newTestRepository(t)

	for i := 0; i < 5; i++ {
		game, config := newGameAndConfig(nil)
		_, err := repo.CreateGame(game, config)
		assert.NoError(t, err)
	}

	first, err := repo.GetGames(0, 2)
	assert.NoError(t, err)
	assert.Len(t, *first, 2)

	last, err := repo.GetGames(2, 2)
	assert.NoError(t, err)
	assert.Len(t, *last, 1)
}

func TestGormGameRepository_DeleteGame_RemovesConfigAndGuesses(t *testing.T) {
	repo := newTestRepository(t)
	game, config := newGameAndConfig(nil)
	_, err := repo.CreateGame(game, config)
	assert.NoError(t, err)

	userID := uint(3)
	assert.NoError(t, repo.AppendGuess(&GuessRecord{
		GameID:      game.ID,
		UserID:      &userID,
		CandidateID: 605141,
		IsCorrect:   false,
	}))

	assert.NoError(t, repo.DeleteGame(game.ID))

	_, err = repo.GetGame(game.ID)
	assert.Error(t, err)

	guesses, err := repo.GetGuesses(game.ID)
	assert.NoError(t, err)
	assert.Empty(t, *guesses)
}

func TestGormGameRepository_Guesses_AppendOnlyInOrder(t *testing.T) {
	repo := newTestRepository(t)
	game, config := newGameAndConfig(nil)
	_, err := repo.CreateGame(game, config)
	assert.NoError(t, err)

	for _, candidate := range []int{605141, 660271, 545361} {
		assert.NoError(t, repo.AppendGuess(&GuessRecord{
			GameID:      game.ID,
			CandidateID: candidate,
			IsCorrect:   candidate == 545361,
		}))
	}

	guesses, err := repo.GetGuesses(game.ID)
	assert.NoError(t, err)
	assert.Len(t, *guesses, 3)
	assert.Equal(t, 605141, (*guesses)[0].CandidateID)
	assert.True(t, (*guesses)[2].IsCorrect)
	// Anonymous guesses carry no user.
	assert.Nil(t, (*guesses)[0].UserID)
}
