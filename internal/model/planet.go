package model

// Planet represents a planet row in the database.
type Planet struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Category string  `db:"category"`
	HomeStar string  `db:"home_star"`
	Mass     float64 `db:"mass"`
	Radius   float64 `db:"radius"`
	Distance float64 `db:"distance"`
}

// AddPlanetRequest carries the form fields of an add-planet request,
// numeric fields already parsed.
type AddPlanetRequest struct {
	Name     string
	Category string
	HomeStar string
	Mass     float64
	Radius   float64
	Distance float64
}

// PlanetResponse is the fixed JSON projection of a planet.
type PlanetResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	HomeStar string  `json:"home_star"`
	Mass     float64 `json:"mass"`
	Radius   float64 `json:"radius"`
	Distance float64 `json:"distance"`
}

// ToPlanetResponse maps a planet row to its response shape, field by field.
func ToPlanetResponse(p Planet) PlanetResponse {
	return PlanetResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		HomeStar: p.HomeStar,
		Mass:     p.Mass,
		Radius:   p.Radius,
		Distance: p.Distance,
	}
}

// ToPlanetResponses maps a slice of planet rows, preserving order. It
// always returns a non-nil slice so an empty store serializes as [].
func ToPlanetResponses(planets []Planet) []PlanetResponse {
	result := make([]PlanetResponse, len(planets))
	for i, p := range planets {
		result[i] = ToPlanetResponse(p)
	}
	return result
}
