package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/statattack/statattack/api/middleware"
	v1 "github.com/statattack/statattack/api/v1"
	"github.com/statattack/statattack/internal/game"
	"github.com/statattack/statattack/internal/stats"
	"github.com/statattack/statattack/internal/user"
	"github.com/statattack/statattack/pkg/db"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	database.AutoMigrate(&user.User{}, &game.Game{}, &game.PlayerConfig{}, &game.GuessRecord{})

	rdb, err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to redis: %v", err)
	}

	userRepo := user.NewGormUserRepository(database)
	v1.UserService = user.NewUserService(userRepo)

	statsClient := stats.NewClient(os.Getenv("STATS_API_URL"))
	statsCache := stats.NewRedisCache(rdb)
	statsService := stats.NewStatsService(statsClient, statsCache)
	v1.StatsService = statsService

	gameRepo := game.NewGormGameRepository(database)
	v1.GameService = game.NewGameService(gameRepo, statsService)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = api_middleware.HTTPErrorHandler

	jwt := api_middleware.SetupJWTMiddleware()

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))

	players := api.Group("/players")
	players.Use(jwt)
	v1.RegisterPlayerRoutes(players)

	api.GET("/stats/catalog", v1.GetStatCatalogHandler)

	v1.RegisterGameRoutes(api.Group("/games"), jwt)

	e.Logger.Fatal(e.Start(":8080"))
}
