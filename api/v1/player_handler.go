package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/statattack/statattack/internal/stats"
	"strconv"
)

var StatsService *stats.StatsService

func RegisterPlayerRoutes(g *echo.Group) {
	g.GET("/search", SearchPlayersHandler)
	g.GET("/:id/stats", GetPlayerStatsHandler)
}

func SearchPlayersHandler(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	players, err := StatsService.Search(c.Request().Context(), name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"players": players})
}

func GetPlayerStatsHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid player ID")
	}

	playerStats, err := StatsService.PlayerStats(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, playerStats)
}

// GetStatCatalogHandler serves the fixed display-metadata tables the
// configuration UI renders stat pickers from.
func GetStatCatalogHandler(c echo.Context) error {
	catalog := echo.Map{}
	for _, domain := range stats.Domains() {
		catalog[string(domain)] = stats.Catalog(domain)
	}
	return c.JSON(http.StatusOK, catalog)
}
