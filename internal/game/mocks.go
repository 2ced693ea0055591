package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/statattack/statattack/internal/stats"
	"github.com/stretchr/testify/mock"
)

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) CreateGame(game *Game, config *PlayerConfig) (*Game, error) {
	args := m.Called(game, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *MockGameRepository) GetGame(id uuid.UUID) (*Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *MockGameRepository) GetGames(page, pageSize int) (*[]Game, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]Game), args.Error(1)
}

func (m *MockGameRepository) DeleteGame(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGameRepository) AppendGuess(record *GuessRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockGameRepository) GetGuesses(gameID uuid.UUID) (*[]GuessRecord, error) {
	args := m.Called(gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]GuessRecord), args.Error(1)
}

type MockStatsLoader struct {
	mock.Mock
}

func (m *MockStatsLoader) PlayerStats(ctx context.Context, playerID int) (*stats.PlayerStats, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.PlayerStats), args.Error(1)
}
