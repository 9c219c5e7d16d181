package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestUserResponseOmitsPassword(t *testing.T) {
	u := User{ID: 1, Name: "Luke", LastName: "Skywalker", Email: "luke@tatooine.net", Password: "$argon2id$secret", IsActive: true}

	m := toMap(t, u.Response())
	assert.Len(t, m, 4)
	assert.NotContains(t, m, "password")
	assert.NotContains(t, m, "is_active")
	assert.Equal(t, "Skywalker", m["last_name"])
}

func TestUserEntityNeverEncodesPassword(t *testing.T) {
	b, err := json.Marshal(User{ID: 1, Email: "luke@tatooine.net", Password: "$argon2id$secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "Password")
}

func TestUserResponseWithFavorites(t *testing.T) {
	u := User{ID: 1, Name: "Leia", LastName: "Organa", Email: "leia@alderaan.gov", Password: "hash"}
	favs := Favorites{
		Planets: []FavoritePlanet{{ID: 7, UserID: 1, PlanetID: 2, User: u, Planet: Planet{ID: 2, Name: "Alderaan", Diameter: 12500}}},
	}

	m := toMap(t, u.ResponseWithFavorites(favs))
	assert.Equal(t, "Leia", m["name"])
	assert.NotContains(t, m, "password")

	planets := m["favorite_planet"].([]any)
	require.Len(t, planets, 1)
	fav := planets[0].(map[string]any)
	assert.EqualValues(t, 7, fav["id"])
	assert.Equal(t, "Alderaan", fav["planet"].(map[string]any)["name"])
	assert.NotContains(t, fav["user"].(map[string]any), "password")

	assert.Equal(t, []any{}, m["favorite_character"])
}

func TestCharacterResponseNulls(t *testing.T) {
	height := int64(172)
	c := Character{ID: 3, Name: strPtr("Luke Skywalker"), Height: &height}

	m := toMap(t, c.Response())
	assert.Equal(t, "Luke Skywalker", m["name"])
	assert.EqualValues(t, 172, m["height"])
	assert.Contains(t, m, "gender")
	assert.Nil(t, m["gender"])
	assert.Nil(t, m["weight"])
}

func TestFavoritePlanetNestsFullPlanet(t *testing.T) {
	p := Planet{ID: 1, Name: "Tatooine", Population: strPtr("200000"), Diameter: 10465}
	fp := FavoritePlanet{ID: 4, User: User{ID: 1, Name: "Luke", Password: "hash"}, Planet: p}

	resp := fp.Response()
	assert.Equal(t, p.Response(), resp.Planet)

	m := toMap(t, resp)
	planet := m["planet"].(map[string]any)
	assert.Equal(t, "Tatooine", planet["name"])
	assert.Equal(t, "200000", planet["population"])
	assert.EqualValues(t, 10465, planet["diameter"])
	assert.NotContains(t, m["user"].(map[string]any), "password")
}

func TestFavoritesResponseEmptySlices(t *testing.T) {
	m := toMap(t, Favorites{}.Response())
	assert.Equal(t, []any{}, m["planets"])
	assert.Equal(t, []any{}, m["characters"])
}
