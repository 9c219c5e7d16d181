package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron/holocron-go/internal/config"
	"github.com/holocron/holocron-go/internal/model"
	"github.com/holocron/holocron-go/internal/repository"
)

type testServer struct {
	handler  http.Handler
	luke     *model.User
	leia     *model.User
	tatooine *model.Planet
	yoda     *model.Character
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	db, err := repository.Open(ctx, "sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	population := "200000"
	yodaName := "Yoda"
	ts := &testServer{
		luke:     &model.User{Name: "Luke", LastName: "Skywalker", Email: "luke@tatooine.net", Password: "hash", IsActive: true},
		leia:     &model.User{Name: "Leia", LastName: "Organa", Email: "leia@alderaan.gov", Password: "hash", IsActive: true},
		tatooine: &model.Planet{Name: "Tatooine", Population: &population, Diameter: 10465},
		yoda:     &model.Character{Name: &yodaName},
	}
	users := repository.NewUserRepository(db)
	require.NoError(t, users.Create(ctx, ts.luke))
	require.NoError(t, users.Create(ctx, ts.leia))
	require.NoError(t, repository.NewPlanetRepository(db).Create(ctx, ts.tatooine))
	require.NoError(t, repository.NewCharacterRepository(db).Create(ctx, ts.yoda))

	cfg := config.Default()
	cfg.RateLimitBurst = 100
	ts.handler = New(cfg, zerolog.Nop(), db)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body map[string]any
	if rec.Header().Get("Content-Type") == "application/json" && rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec, _ := ts.do(t, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSitemapListsRoutes(t *testing.T) {
	ts := newTestServer(t)
	rec, body := ts.do(t, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	routes, ok := body["routes"].([]any)
	require.True(t, ok)
	var found bool
	for _, r := range routes {
		entry := r.(map[string]any)
		if entry["method"] == "POST" && entry["path"] == "/favorite/planet/{planetId:[0-9]+}" {
			found = true
		}
	}
	assert.True(t, found, "mutation routes are listed")
}

func TestUsers(t *testing.T) {
	ts := newTestServer(t)

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "luke@tatooine.net", users[0]["email"])
	assert.NotContains(t, users[0], "password")
	assert.NotContains(t, users[0], "favorite_planet")

	rec, body := ts.do(t, http.MethodGet, fmt.Sprintf("/user/%d", ts.leia.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Organa", user["last_name"])

	rec, body = ts.do(t, http.MethodGet, "/user/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, body["msg"])

	rec, _ = ts.do(t, http.MethodGet, "/user/abc")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsersWithFavorites(t *testing.T) {
	ts := newTestServer(t)
	rec, _ := ts.do(t, http.MethodPost, fmt.Sprintf("/favorite/planet/%d", ts.tatooine.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user?favorites=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Len(t, users[0]["favorite_planet"], 1)
	assert.Len(t, users[1]["favorite_planet"], 0)
	assert.NotNil(t, users[1]["favorite_character"])
}

func TestCatalog(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.do(t, http.MethodGet, "/people")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["msg"])
	people := body["character_id"].([]any)
	require.Len(t, people, 1)
	yoda := people[0].(map[string]any)
	assert.Equal(t, "Yoda", yoda["name"])
	assert.Contains(t, yoda, "height")
	assert.Nil(t, yoda["height"])

	rec, body = ts.do(t, http.MethodGet, fmt.Sprintf("/people/%d", ts.yoda.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Yoda", body["user"].(map[string]any)["name"])

	rec, _ = ts.do(t, http.MethodGet, "/people/42")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = ts.do(t, http.MethodGet, "/planet")
	require.Equal(t, http.StatusOK, rec.Code)
	planets := body["planet_id"].([]any)
	require.Len(t, planets, 1)
	assert.Equal(t, "200000", planets[0].(map[string]any)["population"])

	rec, body = ts.do(t, http.MethodGet, fmt.Sprintf("/planet/%d", ts.tatooine.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 10465, body["user"].(map[string]any)["diameter"])

	rec, _ = ts.do(t, http.MethodGet, "/planet/42")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoriteLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.do(t, http.MethodPost, fmt.Sprintf("/favorite/planet/%d?user_id=%d", ts.tatooine.ID, ts.leia.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	fav := body["favorite"].(map[string]any)
	assert.Equal(t, "Tatooine", fav["planet"].(map[string]any)["name"])
	assert.Equal(t, "Leia", fav["user"].(map[string]any)["name"])
	planetFavID := int64(fav["id"].(float64))

	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/favorite/people/%d", ts.yoda.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	fav = body["favorite"].(map[string]any)
	assert.Equal(t, "Luke", fav["user"].(map[string]any)["name"], "defaults to the first user")
	characterFavID := int64(fav["id"].(float64))

	rec, body = ts.do(t, http.MethodGet, fmt.Sprintf("/user/favorite/%d", ts.leia.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	favs := body["favorites"].(map[string]any)
	assert.Len(t, favs["planets"], 1)
	assert.Len(t, favs["characters"], 0)

	rec, body = ts.do(t, http.MethodGet, "/user/favorite")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["favorite_planets"], 1)
	assert.Len(t, body["favorite_characters"], 1)

	rec, body = ts.do(t, http.MethodGet, "/user/favorites")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["msg"])
	assert.NotContains(t, body, "favorite_characters")
	planetFavs := body["planet_id"].([]any)
	require.Len(t, planetFavs, 1)
	assert.Equal(t, "Tatooine", planetFavs[0].(map[string]any)["planet"].(map[string]any)["name"])

	rec, _ = ts.do(t, http.MethodDelete, fmt.Sprintf("/favorite/planet/%d", planetFavID))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, body = ts.do(t, http.MethodDelete, fmt.Sprintf("/favorite/planet/%d", planetFavID))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Something happened, the favorite planet does not exist", body["msg"])

	rec, _ = ts.do(t, http.MethodDelete, fmt.Sprintf("/favorite/people/%d", characterFavID))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, body = ts.do(t, http.MethodDelete, fmt.Sprintf("/favorite/people/%d", characterFavID))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Something happened, the favorite character does not exist", body["msg"])

	rec, body = ts.do(t, http.MethodGet, "/user/favorite")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["favorite_planets"], 0)
	assert.Len(t, body["favorite_characters"], 0)
}

func TestFavoriteErrors(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.do(t, http.MethodPost, "/favorite/planet/999")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Something happened, the planet does not exist", body["msg"])

	rec, body = ts.do(t, http.MethodPost, "/favorite/people/999")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Something happened, the character does not exist", body["msg"])

	rec, body = ts.do(t, http.MethodPost, fmt.Sprintf("/favorite/planet/%d?user_id=999", ts.tatooine.ID))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Something happened, the user does not exist", body["msg"])

	rec, _ = ts.do(t, http.MethodPost, fmt.Sprintf("/favorite/planet/%d?user_id=luke", ts.tatooine.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, "/user/favorite/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoriteMutationsAreRateLimited(t *testing.T) {
	cfg := config.Default()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1

	db, err := repository.Open(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	ts := &testServer{handler: New(cfg, zerolog.Nop(), db)}

	// The store is empty, so the first call fails on the missing user.
	rec, _ := ts.do(t, http.MethodPost, "/favorite/planet/1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, body := ts.do(t, http.MethodPost, "/favorite/planet/1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many requests", body["msg"])

	// Reads are not limited.
	rec, _ = ts.do(t, http.MethodGet, "/planet")
	assert.Equal(t, http.StatusOK, rec.Code)
}
