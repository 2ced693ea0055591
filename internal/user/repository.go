package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(username, password string) (*User, error)
	ValidateUser(username, password string) (*User, error)
	GetUser(id int) (*User, error)
	GetUserUsername(id int) (string, error)
	FetchGuessStats(userID int) (GuessStats, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(username, password string) (*User, error) {
	var exists User
	result := r.db.Where("username = ?", username).First(&exists)
	if result.Error == nil {
		return nil, errors.New("user already exists")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Username: username,
		Password: string(hashed),
	}

	if err := r.db.Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *GormUserRepository) ValidateUser(username, password string) (*User, error) {
	var u User
	result := r.db.Where("username = ?", username).First(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *GormUserRepository) GetUser(id int) (*User, error) {
	var u User
	result := r.db.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &u, nil
}

func (r *GormUserRepository) GetUserUsername(id int) (string, error) {
	u, err := r.GetUser(id)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", gorm.ErrRecordNotFound
	}

	return u.Username, nil
}

// FetchGuessStats counts the user's footprint across the guess and game
// tables. The tables belong to the game package; only their names are
// shared here.
func (r *GormUserRepository) FetchGuessStats(userID int) (GuessStats, error) {
	var stats GuessStats

	var total int64
	if err := r.db.Table("guess_records").Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return stats, err
	}

	var correct int64
	if err := r.db.Table("guess_records").Where("user_id = ? AND is_correct = ?", userID, true).Count(&correct).Error; err != nil {
		return stats, err
	}

	var created int64
	if err := r.db.Table("games").Where("creator_id = ?", userID).Count(&created).Error; err != nil {
		return stats, err
	}

	stats.TotalGuesses = int(total)
	stats.CorrectGuesses = int(correct)
	stats.GamesCreated = int(created)
	return stats, nil
}
