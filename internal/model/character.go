package model

// Character is a fictional character. Every attribute but the id may be absent.
type Character struct {
	ID        int64
	Name      *string
	Gender    *string
	HairColor *string
	EyeColor  *string
	Height    *int64
	Weight    *int64
}

// CharacterResponse is the flat API form of a Character; absent values encode as null.
type CharacterResponse struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	Gender    *string `json:"gender"`
	HairColor *string `json:"hair_color"`
	EyeColor  *string `json:"eye_color"`
	Height    *int64  `json:"height"`
	Weight    *int64  `json:"weight"`
}

func (c Character) Response() CharacterResponse {
	return CharacterResponse{
		ID:        c.ID,
		Name:      c.Name,
		Gender:    c.Gender,
		HairColor: c.HairColor,
		EyeColor:  c.EyeColor,
		Height:    c.Height,
		Weight:    c.Weight,
	}
}
