package service

import (
	"github.com/pkg/errors"

	"github.com/holocron/holocron-go/internal/repository"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrPlanetNotFound    = errors.New("planet not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrReferenceNotFound = errors.New("referenced row not found")
)

// translate maps repository sentinels onto service errors. The specific
// entity wins over the generic reference error.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrCharacterNotFound):
		return ErrCharacterNotFound
	case errors.Is(err, repository.ErrPlanetNotFound):
		return ErrPlanetNotFound
	case errors.Is(err, repository.ErrFavoriteNotFound):
		return ErrFavoriteNotFound
	case errors.Is(err, repository.ErrReferenceNotFound):
		return ErrReferenceNotFound
	}
	return err
}
