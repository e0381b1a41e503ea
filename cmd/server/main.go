package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tkarvonen/athlete-journal/internal/config"
	"github.com/tkarvonen/athlete-journal/internal/database"
	"github.com/tkarvonen/athlete-journal/internal/handler"
	"github.com/tkarvonen/athlete-journal/internal/queue"
	"github.com/tkarvonen/athlete-journal/internal/repository"
	"github.com/tkarvonen/athlete-journal/internal/router"
)

func main() {
	// Load a local .env if present; real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is unreachable; middleware degrades to pass-through

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	profiles := repository.NewProfileRepo(db)
	entries := repository.NewEntryRepo(db)
	reflections := repository.NewReflectionRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens, profiles)
	entryH := handler.NewEntryHandler(entries)
	profileH := handler.NewProfileHandler(profiles)
	reflectionH := handler.NewReflectionHandler(reflections)
	summaryH := handler.NewSummaryHandler(entries, profiles, reflections)

	// Background worker: consumes journal activity events and appends
	// them to logs/activity.log.  Runs its own reconnect loop.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterJournal(e, router.JournalDeps{
		Entries:     entryH,
		Profiles:    profileH,
		Reflections: reflectionH,
		Summaries:   summaryH,
		RDB:         rdb,
		CacheCfg:    config.LoadCacheConfig(),
		RateCfg:     config.LoadRateLimitConfig(),
		JWTSecret:   cfg.JWTSecret,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
