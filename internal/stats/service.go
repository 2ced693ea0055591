package stats

import (
	"context"
	"log"
)

type Provider interface {
	SearchPlayers(ctx context.Context, name string) ([]PlayerSummary, error)
	LoadPlayerStats(ctx context.Context, playerID int) (*PlayerStats, error)
}

type Cache interface {
	GetPlayerStats(ctx context.Context, playerID int) (*PlayerStats, error)
	SetPlayerStats(ctx context.Context, playerID int, stats *PlayerStats) error
	GetSearch(ctx context.Context, name string) ([]PlayerSummary, error)
	SetSearch(ctx context.Context, name string, summaries []PlayerSummary) error
}

// StatsService fronts the provider with the Redis cache. Cache failures
// are logged and the provider is asked instead; a broken cache must not
// take player lookups down with it.
type StatsService struct {
	provider Provider
	cache    Cache
}

func NewStatsService(provider Provider, cache Cache) *StatsService {
	return &StatsService{provider: provider, cache: cache}
}

func (s *StatsService) Search(ctx context.Context, name string) ([]PlayerSummary, error) {
	cached, err := s.cache.GetSearch(ctx, name)
	if err != nil {
		log.Println("Error reading search cache:", err)
	}
	if cached != nil {
		return cached, nil
	}

	summaries, err := s.provider.SearchPlayers(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetSearch(ctx, name, summaries); err != nil {
		log.Println("Error writing search cache:", err)
	}
	return summaries, nil
}

func (s *StatsService) PlayerStats(ctx context.Context, playerID int) (*PlayerStats, error) {
	cached, err := s.cache.GetPlayerStats(ctx, playerID)
	if err != nil {
		log.Println("Error reading player stats cache:", err)
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := s.provider.LoadPlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetPlayerStats(ctx, playerID, stats); err != nil {
		log.Println("Error writing player stats cache:", err)
	}
	return stats, nil
}
