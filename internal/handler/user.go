package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/holocron/holocron-go/internal/service"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleList handles GET /user. With ?favorites=true each user carries their favorites.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	withFavorites, _ := strconv.ParseBool(r.URL.Query().Get("favorites"))

	if withFavorites {
		users, err := h.service.ListWithFavorites(r.Context())
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
		return
	}

	users, err := h.service.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// HandleGet handles GET /user/{id}.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusNotFound, msgResponse("user not found"))
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, msgResponse(fmt.Sprintf("User %d does not exist", id)))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
