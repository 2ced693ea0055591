package user

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"password,omitempty"`
}

// GuessStats is the aggregate a user accumulates across every game they
// have played, counted from the append-only guess records.
type GuessStats struct {
	TotalGuesses   int
	CorrectGuesses int
	GamesCreated   int
}

type UserStatsResponse struct {
	Username       string  `json:"username"`
	TotalGuesses   int     `json:"totalGuesses"`
	CorrectGuesses int     `json:"correctGuesses"`
	GamesCreated   int     `json:"gamesCreated"`
	Accuracy       float64 `json:"accuracy"`
}
