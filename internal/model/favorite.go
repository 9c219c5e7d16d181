package model

// FavoritePlanet is a "user likes planet" join row, loaded with both ends.
type FavoritePlanet struct {
	ID       int64
	UserID   int64
	PlanetID int64
	User     User
	Planet   Planet
}

// FavoriteCharacter is a "user likes character" join row, loaded with both ends.
type FavoriteCharacter struct {
	ID          int64
	UserID      int64
	CharacterID int64
	User        User
	Character   Character
}

// Favorites groups the favorite rows of one user, or of the whole store.
type Favorites struct {
	Planets    []FavoritePlanet
	Characters []FavoriteCharacter
}

type FavoritePlanetResponse struct {
	ID     int64          `json:"id"`
	User   UserResponse   `json:"user"`
	Planet PlanetResponse `json:"planet"`
}

type FavoriteCharacterResponse struct {
	ID        int64             `json:"id"`
	User      UserResponse      `json:"user"`
	Character CharacterResponse `json:"character"`
}

type FavoritesResponse struct {
	Planets    []FavoritePlanetResponse    `json:"planets"`
	Characters []FavoriteCharacterResponse `json:"characters"`
}

func (f FavoritePlanet) Response() FavoritePlanetResponse {
	return FavoritePlanetResponse{
		ID:     f.ID,
		User:   f.User.Response(),
		Planet: f.Planet.Response(),
	}
}

func (f FavoriteCharacter) Response() FavoriteCharacterResponse {
	return FavoriteCharacterResponse{
		ID:        f.ID,
		User:      f.User.Response(),
		Character: f.Character.Response(),
	}
}

// Response serializes every row. The slices are never nil so they encode as [].
func (f Favorites) Response() FavoritesResponse {
	resp := FavoritesResponse{
		Planets:    make([]FavoritePlanetResponse, len(f.Planets)),
		Characters: make([]FavoriteCharacterResponse, len(f.Characters)),
	}
	for i, fp := range f.Planets {
		resp.Planets[i] = fp.Response()
	}
	for i, fc := range f.Characters {
		resp.Characters[i] = fc.Response()
	}
	return resp
}
