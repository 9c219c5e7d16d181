// Package router wires handlers onto a chi mux.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/holocron/holocron-go/internal/config"
	"github.com/holocron/holocron-go/internal/handler"
	"github.com/holocron/holocron-go/internal/middleware"
	"github.com/holocron/holocron-go/internal/repository"
	"github.com/holocron/holocron-go/internal/service"
)

// New builds the HTTP handler for the catalog API on top of db.
func New(cfg config.Config, log zerolog.Logger, db *repository.DB) http.Handler {
	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	characterHandler := handler.NewCharacterHandler(service.NewCharacterService(characterRepo))
	planetHandler := handler.NewPlanetHandler(service.NewPlanetService(planetRepo))
	favoriteHandler := handler.NewFavoriteHandler(service.NewFavoriteService(favoriteRepo, userRepo))

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/", handler.NewSitemapHandler(r).HandleSitemap)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/user", userHandler.HandleList)
	r.Get("/user/{id:[0-9]+}", userHandler.HandleGet)
	r.Get("/people", characterHandler.HandleList)
	r.Get("/people/{id:[0-9]+}", characterHandler.HandleGet)
	r.Get("/planet", planetHandler.HandleList)
	r.Get("/planet/{id:[0-9]+}", planetHandler.HandleGet)

	r.Get("/user/favorite", favoriteHandler.HandleAll)
	r.Get("/user/favorites", favoriteHandler.HandleAllPlanets)
	r.Get("/user/favorite/{userId:[0-9]+}", favoriteHandler.HandleForUser)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/favorite/planet/{planetId:[0-9]+}", favoriteHandler.HandleAddPlanet)
		r.Post("/favorite/people/{peopleId:[0-9]+}", favoriteHandler.HandleAddCharacter)
		r.Delete("/favorite/planet/{planetId:[0-9]+}", favoriteHandler.HandleRemovePlanet)
		r.Delete("/favorite/people/{peopleId:[0-9]+}", favoriteHandler.HandleRemoveCharacter)
	})

	return r
}
