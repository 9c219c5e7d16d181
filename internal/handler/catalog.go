package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/holocron/holocron-go/internal/service"
)

// CharacterHandler serves the /people endpoints.
type CharacterHandler struct {
	service *service.CharacterService
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(svc *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: svc}
}

// HandleList handles GET /people.
func (h *CharacterHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	characters, err := h.service.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":          "Here is your characters list",
		"character_id": characters,
	})
}

// HandleGet handles GET /people/{id}. The envelope key is "user" for
// compatibility with existing clients.
func (h *CharacterHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusNotFound, msgResponse("character not found"))
		return
	}

	character, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCharacterNotFound) {
			writeJSON(w, http.StatusNotFound, msgResponse(fmt.Sprintf("Character %d does not exist", id)))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": character})
}

// PlanetHandler serves the /planet endpoints.
type PlanetHandler struct {
	service *service.PlanetService
}

// NewPlanetHandler creates a new PlanetHandler.
func NewPlanetHandler(svc *service.PlanetService) *PlanetHandler {
	return &PlanetHandler{service: svc}
}

// HandleList handles GET /planet.
func (h *PlanetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	planets, err := h.service.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":       "Here is your planet list",
		"planet_id": planets,
	})
}

// HandleGet handles GET /planet/{id}.
func (h *PlanetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusNotFound, msgResponse("planet not found"))
		return
	}

	planet, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanetNotFound) {
			writeJSON(w, http.StatusNotFound, msgResponse(fmt.Sprintf("Planet %d does not exist", id)))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": planet})
}
