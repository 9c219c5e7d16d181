package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/holocron/holocron-go/internal/service"
)

const (
	msgUserMissing              = "Something happened, the user does not exist"
	msgPlanetMissing            = "Something happened, the planet does not exist"
	msgCharacterMissing         = "Something happened, the character does not exist"
	msgFavoritePlanetMissing    = "Something happened, the favorite planet does not exist"
	msgFavoriteCharacterMissing = "Something happened, the favorite character does not exist"
)

// FavoriteHandler handles HTTP requests for favorites. Mutations answer 401
// when a referenced row is absent.
type FavoriteHandler struct {
	service *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: svc}
}

// HandleForUser handles GET /user/favorite/{userId}.
func (h *FavoriteHandler) HandleForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		writeJSON(w, http.StatusNotFound, msgResponse(msgUserMissing))
		return
	}

	favs, err := h.service.ForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, msgResponse(fmt.Sprintf("User %d does not exist", userID)))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":       fmt.Sprintf("Here are the favorites of user %d", userID),
		"favorites": favs,
	})
}

// HandleAll handles GET /user/favorite.
func (h *FavoriteHandler) HandleAll(w http.ResponseWriter, r *http.Request) {
	favs, err := h.service.All(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":                 "Here is every favorite",
		"favorite_planets":    favs.Planets,
		"favorite_characters": favs.Characters,
	})
}

// HandleAllPlanets handles GET /user/favorites, which lists only the favorite
// planets under the same "planet_id" key as GET /planet.
func (h *FavoriteHandler) HandleAllPlanets(w http.ResponseWriter, r *http.Request) {
	favs, err := h.service.All(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":       "Here is every favorite planet",
		"planet_id": favs.Planets,
	})
}

// HandleAddPlanet handles POST /favorite/planet/{planetId}[?user_id=N].
func (h *FavoriteHandler) HandleAddPlanet(w http.ResponseWriter, r *http.Request) {
	planetID, ok := pathID(r, "planetId")
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse(msgPlanetMissing))
		return
	}
	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	fav, err := h.service.AddPlanet(r.Context(), userID, planetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, msgResponse(msgUserMissing))
		case errors.Is(err, service.ErrPlanetNotFound), errors.Is(err, service.ErrReferenceNotFound):
			writeJSON(w, http.StatusUnauthorized, msgResponse(msgPlanetMissing))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":      fmt.Sprintf("Planet %s added to the favorites of user %d", fav.Planet.Name, fav.User.ID),
		"favorite": fav,
	})
}

// HandleAddCharacter handles POST /favorite/people/{peopleId}[?user_id=N].
func (h *FavoriteHandler) HandleAddCharacter(w http.ResponseWriter, r *http.Request) {
	characterID, ok := pathID(r, "peopleId")
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse(msgCharacterMissing))
		return
	}
	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	fav, err := h.service.AddCharacter(r.Context(), userID, characterID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, msgResponse(msgUserMissing))
		case errors.Is(err, service.ErrCharacterNotFound), errors.Is(err, service.ErrReferenceNotFound):
			writeJSON(w, http.StatusUnauthorized, msgResponse(msgCharacterMissing))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":      fmt.Sprintf("Character %d added to the favorites of user %d", characterID, fav.User.ID),
		"favorite": fav,
	})
}

// HandleRemovePlanet handles DELETE /favorite/planet/{planetId}. The parameter
// is the id of the favorite row, not of the planet.
func (h *FavoriteHandler) HandleRemovePlanet(w http.ResponseWriter, r *http.Request) {
	favoriteID, ok := pathID(r, "planetId")
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse(msgFavoritePlanetMissing))
		return
	}

	if err := h.service.RemovePlanet(r.Context(), favoriteID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			writeJSON(w, http.StatusUnauthorized, msgResponse(msgFavoritePlanetMissing))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, msgResponse(fmt.Sprintf("Favorite planet %d deleted", favoriteID)))
}

// HandleRemoveCharacter handles DELETE /favorite/people/{peopleId}. The
// parameter is the id of the favorite row, not of the character.
func (h *FavoriteHandler) HandleRemoveCharacter(w http.ResponseWriter, r *http.Request) {
	favoriteID, ok := pathID(r, "peopleId")
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse(msgFavoriteCharacterMissing))
		return
	}

	if err := h.service.RemoveCharacter(r.Context(), favoriteID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			writeJSON(w, http.StatusUnauthorized, msgResponse(msgFavoriteCharacterMissing))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, msgResponse(fmt.Sprintf("Favorite character %d deleted", favoriteID)))
}

// queryUserID reads the optional user_id query parameter. It writes a 400 and
// reports false when the value is not an integer.
func queryUserID(w http.ResponseWriter, r *http.Request) (*int64, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, msgResponse("user_id must be an integer"))
		return nil, false
	}
	return &id, true
}
