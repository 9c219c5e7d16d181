package model

// Planet is a catalog planet. Population is free-form ("unknown" is valid).
type Planet struct {
	ID         int64
	Name       string
	Population *string
	Diameter   int64
}

type PlanetResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Population *string `json:"population"`
	Diameter   int64   `json:"diameter"`
}

func (p Planet) Response() PlanetResponse {
	return PlanetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Population: p.Population,
		Diameter:   p.Diameter,
	}
}
