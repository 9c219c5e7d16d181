package service

import (
	"context"

	"github.com/holocron/holocron-go/internal/model"
	"github.com/holocron/holocron-go/internal/repository"
)

// CharacterService handles character lookups.
type CharacterService struct {
	repo *repository.CharacterRepository
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(repo *repository.CharacterRepository) *CharacterService {
	return &CharacterService{repo: repo}
}

func (s *CharacterService) List(ctx context.Context) ([]model.CharacterResponse, error) {
	characters, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.CharacterResponse, len(characters))
	for i, c := range characters {
		resp[i] = c.Response()
	}
	return resp, nil
}

func (s *CharacterService) Get(ctx context.Context, id int64) (model.CharacterResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.CharacterResponse{}, translate(err)
	}
	return c.Response(), nil
}

// PlanetService handles planet lookups.
type PlanetService struct {
	repo *repository.PlanetRepository
}

// NewPlanetService creates a new PlanetService.
func NewPlanetService(repo *repository.PlanetRepository) *PlanetService {
	return &PlanetService{repo: repo}
}

func (s *PlanetService) List(ctx context.Context) ([]model.PlanetResponse, error) {
	planets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.PlanetResponse, len(planets))
	for i, p := range planets {
		resp[i] = p.Response()
	}
	return resp, nil
}

func (s *PlanetService) Get(ctx context.Context, id int64) (model.PlanetResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.PlanetResponse{}, translate(err)
	}
	return p.Response(), nil
}
