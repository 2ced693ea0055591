package user

import (
	"errors"

	"github.com/statattack/statattack/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(user User) (string, error) {
	userRetrieved, err := u.repo.CreateUser(user.Username, user.Password)
	if err != nil {
		return "", err
	}

	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) Login(user User) (string, error) {
	userRetrieved, err := u.repo.ValidateUser(user.Username, user.Password)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetUserStats(userID int) (*UserStatsResponse, error) {
	user, errUser := u.repo.GetUser(userID)
	if errUser != nil {
		return nil, errUser
	}

	if user == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}

	stats, err := u.repo.FetchGuessStats(userID)
	if err != nil {
		return nil, err
	}

	accuracy := 0.0
	if stats.TotalGuesses > 0 {
		accuracy = 100 * (float64(stats.CorrectGuesses) / float64(stats.TotalGuesses))
	}

	response := &UserStatsResponse{
		Username:       user.Username,
		TotalGuesses:   stats.TotalGuesses,
		CorrectGuesses: stats.CorrectGuesses,
		GamesCreated:   stats.GamesCreated,
		Accuracy:       accuracy,
	}
	return response, nil
}
