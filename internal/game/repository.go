package game

import (
	"errors"

	"github.com/google/uuid"
	"github.com/statattack/statattack/internal/apperrors"
	"gorm.io/gorm"
)

type GameRepository interface {
	CreateGame(game *Game, config *PlayerConfig) (*Game, error)
	GetGame(id uuid.UUID) (*Game, error)
	GetGames(page, pageSize int) (*[]Game, error)
	DeleteGame(id uuid.UUID) error
	AppendGuess(record *GuessRecord) error
	GetGuesses(gameID uuid.UUID) (*[]GuessRecord, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

// CreateGame inserts the game and its config as one transaction. A game
// without its config must never exist, so a config failure rolls the
// game row back.
func (r *GormGameRepository) CreateGame(game *Game, config *PlayerConfig) (*Game, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		config.GameID = game.ID
		if err := tx.Create(config).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "Error creating game", err)
	}

	game.Config = config
	return game, nil
}

func (r *GormGameRepository) GetGame(id uuid.UUID) (*Game, error) {
	var game Game
	result := r.db.Preload("Config").Where("id = ?", id).First(&game)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(404, "Game not found", result.Error)
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting game", result.Error)
	}

	return &game, nil
}

func (r *GormGameRepository) GetGames(page, pageSize int) (*[]Game, error) {
	games := []Game{}
	result := r.db.
		Order("created_at DESC").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&games)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting games", result.Error)
	}

	return &games, nil
}

// DeleteGame removes the game with its config and guess history.
func (r *GormGameRepository) DeleteGame(id uuid.UUID) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&GuessRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&PlayerConfig{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Game{}).Error
	})
	if err != nil {
		return apperrors.NewAppError(500, "Error deleting game", err)
	}
	return nil
}

func (r *GormGameRepository) AppendGuess(record *GuessRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return apperrors.NewAppError(500, "Error saving guess", err)
	}
	return nil
}

func (r *GormGameRepository) GetGuesses(gameID uuid.UUID) (*[]GuessRecord, error) {
	records := []GuessRecord{}
	result := r.db.Where("game_id = ?", gameID).Order("created_at ASC").Find(&records)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting guesses", result.Error)
	}
	return &records, nil
}
