package v1

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	api_middleware "github.com/statattack/statattack/api/middleware"
	"github.com/statattack/statattack/internal/game"
)

const INVALID_REQUEST = "invalid request"

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.POST("", CreateGameHandler, jwt)
	g.GET("", GetGamesHandler)
	g.GET("/:id", GetGameHandler)
	g.DELETE("/:id", DeleteGameHandler, jwt)
	g.GET("/:id/guesses", GetGuessesHandler, jwt)
	g.POST("/:id/guesses", GuessHandler)
	g.POST("/:id/giveup", GiveUpHandler)
}

func CreateGameHandler(c echo.Context) error {
	var request game.CreateGameRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	var creatorID *uint
	if id := api_middleware.UserID(c); id != 0 {
		creatorID = &id
	}

	created, err := GameService.CreateGame(c.Request().Context(), &request, creatorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"game": created,
	})
}

func GetGamesHandler(c echo.Context) error {
	page := c.QueryParam("page")
	pageSize := c.QueryParam("size")
	if page == "" || pageSize == "" {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	pageInt, err := strconv.Atoi(page)
	if err != nil || pageInt < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	pageSizeInt, err := strconv.Atoi(pageSize)
	if err != nil || pageSizeInt <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	games, err := GameService.GetGames(pageInt, pageSizeInt)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"games": games,
	})
}

func GetGameHandler(c echo.Context) error {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}

	wrongGuesses := 0
	if raw := c.QueryParam("guesses"); raw != "" {
		wrongGuesses, err = strconv.Atoi(raw)
		if err != nil || wrongGuesses < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}
	}
	state := game.SessionState(c.QueryParam("state"))

	view, err := GameService.PlayView(c.Request().Context(), gameID, wrongGuesses, state)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

func DeleteGameHandler(c echo.Context) error {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}

	if err := GameService.DeleteGame(gameID, api_middleware.UserID(c)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"deleted": true,
	})
}

func GetGuessesHandler(c echo.Context) error {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}

	guesses, err := GameService.GetGuesses(gameID, api_middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"guesses": guesses,
	})
}

func GuessHandler(c echo.Context) error {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}

	var request game.GuessRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if request.CandidateID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "candidateId is required")
	}

	userID := api_middleware.OptionalUserID(c)
	response, err := GameService.Guess(c.Request().Context(), gameID, userID, &request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response)
}

func GiveUpHandler(c echo.Context) error {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}

	wrongGuesses := 0
	if raw := c.QueryParam("guesses"); raw != "" {
		wrongGuesses, err = strconv.Atoi(raw)
		if err != nil || wrongGuesses < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}
	}

	view, err := GameService.GiveUp(c.Request().Context(), gameID, wrongGuesses)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}
