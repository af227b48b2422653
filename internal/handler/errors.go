package handler

import (
	"errors"
	"log"
	"net/http"

	"cinegraph-api/internal/db"
	"cinegraph-api/internal/repository"
)

// writeError traduce la taxonomía de errores del core a códigos HTTP:
// not-found → 404, base caída o timeout → 503 (reintentable), el resto
// → 500 con log completo.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, db.ErrUnavailable):
		http.Error(w, "base de datos no disponible, reintente", http.StatusServiceUnavailable)
	default:
		log.Printf("[handler] error inesperado: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
