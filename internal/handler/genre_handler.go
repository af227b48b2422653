package handler

import (
	"encoding/json"
	"net/http"

	"cinegraph-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type GenreHandler struct {
	svc *service.GenreService
}

func NewGenreHandler(s *service.GenreService) *GenreHandler { return &GenreHandler{svc: s} }

// @Summary Listar géneros con su cantidad de películas
// @Tags genres
// @Produce json
// @Success 200 {array} models.Genre
// @Router /genres [get]
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	genres, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(genres)
}

// @Summary Detalle de un género
// @Tags genres
// @Produce json
// @Param name path string true "nombre del género"
// @Success 200 {object} models.Genre
// @Failure 404 {string} string "no encontrado"
// @Router /genres/{name} [get]
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	name := chi.URLParam(r, "name")

	genre, err := h.svc.GetByName(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(genre)
}
