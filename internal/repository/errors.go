package repository

import "errors"

// ErrNotFound se devuelve cuando la entidad pedida por id no existe.
// Es una condición distinta de una lista vacía: el handler la traduce
// a 404 en vez de a una página sin resultados.
var ErrNotFound = errors.New("no encontrado")
