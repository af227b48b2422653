package models

// Person es la proyección `p { .* }` de un nodo Person; en el detalle
// trae además actedCount y directedCount.
type Person map[string]any

func (p Person) TmdbID() string {
	s, _ := p["tmdbId"].(string)
	return s
}

func (p Person) Name() string {
	s, _ := p["name"].(string)
	return s
}
