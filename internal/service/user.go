package service

import (
	"context"

	"github.com/holocron/holocron-go/internal/model"
	"github.com/holocron/holocron-go/internal/repository"
)

// UserService handles user lookups.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns every user without favorites.
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.UserResponse, len(users))
	for i, u := range users {
		resp[i] = u.Response()
	}
	return resp, nil
}

// ListWithFavorites returns every user with their favorite rows nested.
func (s *UserService) ListWithFavorites(ctx context.Context) ([]model.UserWithFavoritesResponse, error) {
	users, favs, err := s.repo.ListWithFavorites(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.UserWithFavoritesResponse, len(users))
	for i, u := range users {
		resp[i] = u.ResponseWithFavorites(favs[u.ID])
	}
	return resp, nil
}

// Get returns one user.
func (s *UserService) Get(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.UserResponse{}, translate(err)
	}
	return user.Response(), nil
}
