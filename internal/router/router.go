// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tkarvonen/athlete-journal/internal/config"
	"github.com/tkarvonen/athlete-journal/internal/handler"
	"github.com/tkarvonen/athlete-journal/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes.  Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout revokes the refresh token from the JSON body; no access
	// token is required, so an athlete with an expired session can
	// still terminate it.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// JournalDeps carries everything RegisterJournal needs: the protected
// handlers plus the Redis client and middleware configuration.
type JournalDeps struct {
	Entries     *handler.EntryHandler
	Profiles    *handler.ProfileHandler
	Reflections *handler.ReflectionHandler
	Summaries   *handler.SummaryHandler

	RDB       *redis.Client
	CacheCfg  config.CacheConfig
	RateCfg   config.RateLimitConfig
	JWTSecret string
}

// RegisterJournal registers every journal endpoint under /v1.  All of
// them require a valid access token and share the token-bucket rate
// limit; the read-only summary and stats endpoints additionally go
// through the Redis response cache.
func RegisterJournal(e *echo.Echo, d JournalDeps) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(d.JWTSecret))
	g.Use(middleware.NewTokenBucket(d.RateCfg, d.RDB))

	g.PUT("/entries", d.Entries.Submit)
	g.GET("/entries", d.Entries.List)
	g.GET("/entries/:date", d.Entries.GetByDate)
	g.DELETE("/entries/:id", d.Entries.Delete)

	g.GET("/profile", d.Profiles.Get)
	g.PUT("/profile", d.Profiles.Update)

	g.GET("/reflections/:month", d.Reflections.Get)
	g.PUT("/reflections/:month", d.Reflections.Upsert)

	cache := middleware.NewRedisCache(d.CacheCfg, d.RDB)
	g.GET("/summary/home", d.Summaries.Home, cache)
	g.GET("/summary/monthly", d.Summaries.Monthly, cache)
	g.GET("/summary/yearly", d.Summaries.Yearly, cache)
	g.GET("/stats", d.Summaries.Stats, cache)
}
