package models

// Movie es la proyección `m { .* }` de un nodo Movie: las propiedades
// escalares del nodo más los campos derivados que agrega la consulta
// (favorite siempre; actors/directors/genres/ratingCount en el detalle;
// score en los similares).
type Movie map[string]any

func (m Movie) TmdbID() string {
	s, _ := m["tmdbId"].(string)
	return s
}

func (m Movie) Title() string {
	s, _ := m["title"].(string)
	return s
}

func (m Movie) Favorite() bool {
	b, _ := m["favorite"].(bool)
	return b
}
