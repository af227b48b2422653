package handler

import (
	"encoding/json"
	"net/http"

	"cinegraph-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type PersonHandler struct {
	svc *service.PersonService
}

func NewPersonHandler(s *service.PersonService) *PersonHandler { return &PersonHandler{svc: s} }

// @Summary Listar personas (paginado)
// @Tags people
// @Produce json
// @Param sort query string false "name (default: name)"
// @Param order query string false "ASC|DESC (default: ASC)"
// @Param limit query int false "límite (default: 6)"
// @Param skip query int false "offset (default: 0)"
// @Success 200 {array} models.Person
// @Router /people [get]
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	sort, order, limit, skip := pageParams(r)

	people, err := h.svc.GetAll(r.Context(), sort, order, limit, skip)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(people)
}

// @Summary Detalle de una persona (con conteos de actuaciones y direcciones)
// @Tags people
// @Produce json
// @Param id path string true "tmdbId"
// @Success 200 {object} models.Person
// @Failure 404 {string} string "no encontrado"
// @Router /people/{id} [get]
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")

	person, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(person)
}
