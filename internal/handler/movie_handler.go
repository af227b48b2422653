// internal/handler/movie_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cinegraph-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler { return &MovieHandler{svc: s} }

func pageParams(r *http.Request) (sort, order string, limit, skip int) {
	q := r.URL.Query()
	limit, _ = strconv.Atoi(q.Get("limit"))
	skip, _ = strconv.Atoi(q.Get("skip"))
	return q.Get("sort"), q.Get("order"), limit, skip
}

// @Summary Listar películas (paginado)
// @Tags movies
// @Produce json
// @Param sort query string false "title|released|imdbRating (default: title)"
// @Param order query string false "ASC|DESC (default: ASC)"
// @Param limit query int false "límite (default: 6)"
// @Param skip query int false "offset (default: 0)"
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sort, order, limit, skip := pageParams(r)

	movies, err := h.svc.All(r.Context(), sort, order, limit, skip, UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Detalle de película (elenco, directores, géneros, ratingCount)
// @Tags movies
// @Produce json
// @Param id path string true "tmdbId"
// @Success 200 {object} models.Movie
// @Failure 404 {string} string "no encontrado"
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")

	movie, err := h.svc.FindByID(r.Context(), id, UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movie)
}

// @Summary Películas similares (ranking por conexiones compartidas)
// @Tags movies
// @Produce json
// @Param id path string true "tmdbId"
// @Param limit query int false "límite (default: 6)"
// @Param skip query int false "offset (default: 0)"
// @Success 200 {array} models.Movie
// @Failure 404 {string} string "no encontrado"
// @Router /movies/{id}/similar [get]
func (h *MovieHandler) Similar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")
	_, _, limit, skip := pageParams(r)

	movies, err := h.svc.GetSimilar(r.Context(), id, limit, skip, UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Películas de un género (paginado)
// @Tags genres
// @Produce json
// @Param name path string true "nombre del género"
// @Success 200 {array} models.Movie
// @Router /genres/{name}/movies [get]
func (h *MovieHandler) ListByGenre(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	name := chi.URLParam(r, "name")
	sort, order, limit, skip := pageParams(r)

	movies, err := h.svc.GetByGenre(r.Context(), name, sort, order, limit, skip, UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Películas en las que actuó una persona (paginado)
// @Tags people
// @Produce json
// @Param id path string true "tmdbId de la persona"
// @Success 200 {array} models.Movie
// @Router /people/{id}/acted [get]
func (h *MovieHandler) ListByActor(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")
	sort, order, limit, skip := pageParams(r)

	movies, err := h.svc.GetForActor(r.Context(), id, sort, order, limit, skip, UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Películas dirigidas por una persona (paginado)
// @Tags people
// @Produce json
// @Param id path string true "tmdbId de la persona"
// @Success 200 {array} models.Movie
// @Router /people/{id}/directed [get]
func (h *MovieHandler) ListByDirector(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")
	sort, order, limit, skip := pageParams(r)

	movies, err := h.svc.GetForDirector(r.Context(), id, sort, order, limit, skip, UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary tmdbIds de los favoritos del usuario autenticado
// @Tags account
// @Security BearerAuth
// @Produce json
// @Success 200 {array} string
// @Router /account/favorites [get]
func (h *MovieHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ids, err := h.svc.GetUserFavorites(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(ids)
}
