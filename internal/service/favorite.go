package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/holocron/holocron-go/internal/model"
	"github.com/holocron/holocron-go/internal/repository"
)

// FavoriteService handles adding, removing and listing favorites.
type FavoriteService struct {
	favorites *repository.FavoriteRepository
	users     *repository.UserRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favorites *repository.FavoriteRepository, users *repository.UserRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, users: users}
}

// ForUser returns the favorites of one user.
func (s *FavoriteService) ForUser(ctx context.Context, userID int64) (model.FavoritesResponse, error) {
	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return model.FavoritesResponse{}, translate(err)
	}
	return favs.Response(), nil
}

// All returns every favorite row in the store.
func (s *FavoriteService) All(ctx context.Context) (model.FavoritesResponse, error) {
	favs, err := s.favorites.ListAll(ctx)
	if err != nil {
		return model.FavoritesResponse{}, err
	}
	return favs.Response(), nil
}

// AddPlanet adds a favorite planet for userID. A nil userID selects the first
// user in the store.
func (s *FavoriteService) AddPlanet(ctx context.Context, userID *int64, planetID int64) (model.FavoritePlanetResponse, error) {
	uid, err := s.resolveUser(ctx, userID)
	if err != nil {
		return model.FavoritePlanetResponse{}, err
	}

	fav, err := s.favorites.AddPlanet(ctx, uid, planetID)
	if err != nil {
		return model.FavoritePlanetResponse{}, translate(err)
	}

	zerolog.Ctx(ctx).Info().Int64("favorite_id", fav.ID).Int64("user_id", uid).Int64("planet_id", planetID).Msg("favorite planet added")
	return fav.Response(), nil
}

// AddCharacter adds a favorite character for userID. A nil userID selects the
// first user in the store.
func (s *FavoriteService) AddCharacter(ctx context.Context, userID *int64, characterID int64) (model.FavoriteCharacterResponse, error) {
	uid, err := s.resolveUser(ctx, userID)
	if err != nil {
		return model.FavoriteCharacterResponse{}, err
	}

	fav, err := s.favorites.AddCharacter(ctx, uid, characterID)
	if err != nil {
		return model.FavoriteCharacterResponse{}, translate(err)
	}

	zerolog.Ctx(ctx).Info().Int64("favorite_id", fav.ID).Int64("user_id", uid).Int64("character_id", characterID).Msg("favorite character added")
	return fav.Response(), nil
}

// RemovePlanet deletes the favorite planet row with the given row id.
func (s *FavoriteService) RemovePlanet(ctx context.Context, favoriteID int64) error {
	return translate(s.favorites.RemovePlanet(ctx, favoriteID))
}

// RemoveCharacter deletes the favorite character row with the given row id.
func (s *FavoriteService) RemoveCharacter(ctx context.Context, favoriteID int64) error {
	return translate(s.favorites.RemoveCharacter(ctx, favoriteID))
}

func (s *FavoriteService) resolveUser(ctx context.Context, userID *int64) (int64, error) {
	if userID != nil {
		return *userID, nil
	}

	user, err := s.users.First(ctx)
	if err != nil {
		return 0, translate(err)
	}
	return user.ID, nil
}
