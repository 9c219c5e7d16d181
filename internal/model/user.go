package model

// User represents a user in the database.
// Password holds an Argon2id hash and is never part of a response.
type User struct {
	ID       int64
	Name     string
	LastName string
	Email    string
	Password string `json:"-"`
	IsActive bool
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}

// UserWithFavoritesResponse is a user together with their favorite rows.
type UserWithFavoritesResponse struct {
	UserResponse
	FavoritePlanet    []FavoritePlanetResponse    `json:"favorite_planet"`
	FavoriteCharacter []FavoriteCharacterResponse `json:"favorite_character"`
}

func (u User) Response() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
	}
}

// ResponseWithFavorites serializes the user with the given favorite rows nested.
func (u User) ResponseWithFavorites(favs Favorites) UserWithFavoritesResponse {
	fr := favs.Response()
	return UserWithFavoritesResponse{
		UserResponse:      u.Response(),
		FavoritePlanet:    fr.Planets,
		FavoriteCharacter: fr.Characters,
	}
}
