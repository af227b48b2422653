package models

// Genre es un género con la cantidad de películas clasificadas en él.
type Genre struct {
	Name   string `json:"name"`
	Movies int64  `json:"movies"`
}
