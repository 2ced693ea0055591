package game

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/statattack/statattack/internal/stats"
)

type Game struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string        `gorm:"size:120;not null" json:"title"`
	CreatorID *uint         `gorm:"index" json:"creatorId"`
	CreatedAt time.Time     `json:"createdAt"`
	Config    *PlayerConfig `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"config,omitempty"`
}

// PlayerConfig is the frozen configuration a game exclusively owns: the
// target player plus the visibility partitions and gameplay options the
// creator settled on. Never mutated after the game is created.
type PlayerConfig struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	GameID      uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"gameId"`
	PlayerID    int         `gorm:"not null" json:"playerId"`
	StatsConfig StatsConfig `gorm:"type:jsonb" json:"statsConfig"`
	GameOptions Options     `gorm:"type:jsonb" json:"gameOptions"`
}

// GuessRecord is append-only: one row per guess attempt, never mutated
// or deleted by normal flow.
type GuessRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GameID      uuid.UUID `gorm:"type:uuid;index;not null" json:"gameId"`
	UserID      *uint     `gorm:"index" json:"userId"`
	CandidateID int       `gorm:"not null" json:"candidateId"`
	IsCorrect   bool      `gorm:"not null" json:"isCorrect"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatsConfig holds one visibility partition per stat domain. The JSON
// key names are the persisted wire format and must not change.
type StatsConfig struct {
	Info     stats.Partition `json:"info"`
	Hitting  stats.Partition `json:"hitting"`
	Pitching stats.Partition `json:"pitching"`
}

func (s StatsConfig) Partition(domain stats.Domain) stats.Partition {
	switch domain {
	case stats.DomainInfo:
		return s.Info
	case stats.DomainHitting:
		return s.Hitting
	case stats.DomainPitching:
		return s.Pitching
	}
	return stats.Partition{}
}

func (s StatsConfig) Validate() error {
	for _, domain := range stats.Domains() {
		if err := s.Partition(domain).Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s StatsConfig) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StatsConfig) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func (o Options) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *Options) Scan(value interface{}) error {
	return scanJSON(value, o)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}
