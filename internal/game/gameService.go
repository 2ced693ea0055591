package game

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/statattack/statattack/internal/apperrors"
	"github.com/statattack/statattack/internal/stats"
)

// StatsLoader is the slice of the stats service the game core needs.
type StatsLoader interface {
	PlayerStats(ctx context.Context, playerID int) (*stats.PlayerStats, error)
}

type CreateGameRequest struct {
	Title       string      `json:"title"`
	PlayerID    int         `json:"playerId"`
	StatsConfig StatsConfig `json:"statsConfig"`
	GameOptions Options     `json:"gameOptions"`
}

func (r *CreateGameRequest) Validate() error {
	if r.Title == "" {
		return apperrors.NewAppError(400, "title is required", nil)
	}
	if len(r.Title) > 120 {
		return apperrors.NewAppError(400, "title must not exceed 120 characters", nil)
	}
	if r.PlayerID <= 0 {
		return apperrors.NewAppError(400, "playerId is required", nil)
	}
	if err := r.StatsConfig.Validate(); err != nil {
		return err
	}
	return r.GameOptions.Validate()
}

// GameSummary is the listing shape. The config never rides along: it
// holds the answer.
type GameSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatorID *uint     `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameView is what a guesser sees: the session, the gameplay parameters
// the client needs, and the stat payload filtered to visible keys.
type GameView struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	CreatedAt      time.Time          `json:"createdAt"`
	Session        *Session           `json:"session"`
	Hint           string             `json:"hint,omitempty"`
	StatsPerReveal int                `json:"statsPerReveal,omitempty"`
	Stats          *stats.PlayerStats `json:"stats"`
}

type GuessRequest struct {
	CandidateID  interface{}  `json:"candidateId"`
	WrongGuesses int          `json:"guesses"`
	State        SessionState `json:"state"`
}

type GuessResponse struct {
	Correct      bool                `json:"correct"`
	Result       SessionState        `json:"result"`
	WrongGuesses int                 `json:"wrongGuesses"`
	VisibleStats map[string][]string `json:"visibleStats"`
}

type GameService struct {
	repo  GameRepository
	stats StatsLoader

	// RecordAsync appends guess records on a goroutine. Tests flip it
	// off to keep the repository calls deterministic.
	RecordAsync bool
}

func NewGameService(repo GameRepository, statsLoader StatsLoader) *GameService {
	return &GameService{
		repo:        repo,
		stats:       statsLoader,
		RecordAsync: true,
	}
}

// CreateGame freezes a configuration draft into a persisted game. The
// target player's stats are loaded first so a game can never point at a
// player the provider does not know.
func (s *GameService) CreateGame(ctx context.Context, request *CreateGameRequest, creatorID *uint) (*Game, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.stats.PlayerStats(ctx, request.PlayerID); err != nil {
		return nil, err
	}

	game := &Game{
		ID:        uuid.New(),
		Title:     request.Title,
		CreatorID: creatorID,
	}
	config := &PlayerConfig{
		ID:          uuid.New(),
		PlayerID:    request.PlayerID,
		StatsConfig: request.StatsConfig,
		GameOptions: request.GameOptions,
	}

	return s.repo.CreateGame(game, config)
}

func (s *GameService) GetGames(page, pageSize int) ([]GameSummary, error) {
	games, err := s.repo.GetGames(page, pageSize)
	if err != nil {
		return nil, err
	}

	summaries := make([]GameSummary, 0, len(*games))
	for _, g := range *games {
		summaries = append(summaries, GameSummary{
			ID:        g.ID,
			Title:     g.Title,
			CreatorID: g.CreatorID,
			CreatedAt: g.CreatedAt,
		})
	}
	return summaries, nil
}

// PlayView builds the guesser's view of a game for the session progress
// the client reports.
func (s *GameService) PlayView(ctx context.Context, gameID uuid.UUID, wrongGuesses int, state SessionState) (*GameView, error) {
	game, err := s.repo.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	config, err := requireConfig(game)
	if err != nil {
		return nil, err
	}

	sess, err := ReconstructSession(config.GameOptions, wrongGuesses, state)
	if err != nil {
		return nil, err
	}

	return s.buildView(ctx, game, config, sess)
}

// Guess judges one candidate against the game's target. The guess record
// append is fire-and-forget: a persistence failure is logged, never
// surfaced to the guesser.
func (s *GameService) Guess(ctx context.Context, gameID uuid.UUID, userID *uint, request *GuessRequest) (*GuessResponse, error) {
	game, err := s.repo.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	config, err := requireConfig(game)
	if err != nil {
		return nil, err
	}

	sess, err := ReconstructSession(config.GameOptions, request.WrongGuesses, request.State)
	if err != nil {
		return nil, err
	}
	if sess.Terminal() {
		return nil, apperrors.NewAppError(409, "session is over, no further guesses accepted", nil)
	}

	outcome, err := Judge(request.CandidateID, config.PlayerID)
	if err != nil {
		return nil, err
	}

	candidate, _ := CoerceID(request.CandidateID)
	record := &GuessRecord{
		GameID:      game.ID,
		UserID:      userID,
		CandidateID: int(candidate),
		IsCorrect:   outcome == OutcomeCorrect,
	}
	if s.RecordAsync {
		go s.recordGuess(record)
	} else {
		s.recordGuess(record)
	}

	if err := sess.ApplyGuess(outcome); err != nil {
		return nil, err
	}

	return &GuessResponse{
		Correct:      outcome == OutcomeCorrect,
		Result:       sess.State,
		WrongGuesses: sess.WrongGuesses,
		VisibleStats: visibleByDomain(config, sess, Seed(game.ID)),
	}, nil
}

// GiveUp ends the session and returns the fully revealed view.
func (s *GameService) GiveUp(ctx context.Context, gameID uuid.UUID, wrongGuesses int) (*GameView, error) {
	game, err := s.repo.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	config, err := requireConfig(game)
	if err != nil {
		return nil, err
	}

	sess, err := ReconstructSession(config.GameOptions, wrongGuesses, StateGuessing)
	if err != nil {
		return nil, err
	}
	if !sess.Terminal() {
		if err := sess.GiveUp(); err != nil {
			return nil, err
		}
	}

	return s.buildView(ctx, game, config, sess)
}

func (s *GameService) DeleteGame(gameID uuid.UUID, userID uint) error {
	game, err := s.repo.GetGame(gameID)
	if err != nil {
		return err
	}

	if game.CreatorID == nil || *game.CreatorID != userID {
		return apperrors.NewAppError(403, "Only the creator can delete the game", nil)
	}

	return s.repo.DeleteGame(gameID)
}

func (s *GameService) GetGuesses(gameID uuid.UUID, userID uint) (*[]GuessRecord, error) {
	game, err := s.repo.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	if game.CreatorID == nil || *game.CreatorID != userID {
		return nil, apperrors.NewAppError(403, "Only the creator can see the guesses", nil)
	}

	return s.repo.GetGuesses(gameID)
}

func (s *GameService) recordGuess(record *GuessRecord) {
	if err := s.repo.AppendGuess(record); err != nil {
		log.Println("Error recording guess:", err)
	}
}

func (s *GameService) buildView(ctx context.Context, game *Game, config *PlayerConfig, sess *Session) (*GameView, error) {
	raw, err := s.stats.PlayerStats(ctx, config.PlayerID)
	if err != nil {
		return nil, err
	}

	opts := config.GameOptions
	view := &GameView{
		ID:        game.ID,
		Title:     game.Title,
		CreatedAt: game.CreatedAt,
		Session:   sess,
		Hint:      opts.hintText(),
		Stats:     BuildPlayView(raw, config.StatsConfig, opts, sess, Seed(game.ID)),
	}
	if opts.revealEnabled() {
		view.StatsPerReveal = opts.ProgressiveReveal.StatsPerReveal
	}
	return view, nil
}

func requireConfig(game *Game) (*PlayerConfig, error) {
	if game.Config == nil {
		return nil, apperrors.NewAppError(500, "game has no player config", nil)
	}
	return game.Config, nil
}

func visibleByDomain(config *PlayerConfig, sess *Session, seed int64) map[string][]string {
	visible := make(map[string][]string, 3)
	for _, domain := range stats.Domains() {
		visible[string(domain)] = VisibleKeys(config.StatsConfig, config.GameOptions, domain, sess, seed)
	}
	return visible
}
