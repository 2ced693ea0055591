package stats

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SearchPlayers(ctx context.Context, name string) ([]PlayerSummary, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PlayerSummary), args.Error(1)
}

func (m *MockProvider) LoadPlayerStats(ctx context.Context, playerID int) (*PlayerStats, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlayerStats), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetPlayerStats(ctx context.Context, playerID int) (*PlayerStats, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlayerStats), args.Error(1)
}

func (m *MockCache) SetPlayerStats(ctx context.Context, playerID int, stats *PlayerStats) error {
	args := m.Called(ctx, playerID, stats)
	return args.Error(0)
}

func (m *MockCache) GetSearch(ctx context.Context, name string) ([]PlayerSummary, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PlayerSummary), args.Error(1)
}

func (m *MockCache) SetSearch(ctx context.Context, name string, summaries []PlayerSummary) error {
	args := m.Called(ctx, name, summaries)
	return args.Error(0)
}
