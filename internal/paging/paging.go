// Package paging normaliza los parámetros de paginación y orden de los
// listados. La política es permisiva: valores inválidos se corrigen al
// default en vez de rechazar el request.
package paging

import "strings"

const (
	DefaultLimit = 6
	DefaultSkip  = 0

	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Campos por los que se puede ordenar cada entidad. Todo lo que no esté
// acá nunca llega a interpolarse en un Cypher.
var (
	MovieSorts  = []string{"title", "released", "imdbRating"}
	PersonSorts = []string{"name"}
)

type Params struct {
	Sort  string
	Order string
	Limit int
	Skip  int
}

type Policy struct {
	defaultSort string
	allowed     map[string]bool
	maxLimit    int
}

func NewPolicy(defaultSort string, allowed []string, maxLimit int) *Policy {
	m := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		m[f] = true
	}
	return &Policy{defaultSort: defaultSort, allowed: m, maxLimit: maxLimit}
}

// Normalize corrige sort/order/limit/skip a valores seguros:
// sort fuera de la whitelist cae al default, order solo puede ser
// ASC/DESC (case-insensitive), limit se acota a [1, maxLimit] y
// skip negativo se vuelve 0.
func (p *Policy) Normalize(sort, order string, limit, skip int) Params {
	if !p.allowed[sort] {
		sort = p.defaultSort
	}

	switch strings.ToUpper(order) {
	case OrderAsc:
		order = OrderAsc
	case OrderDesc:
		order = OrderDesc
	default:
		order = OrderAsc
	}

	limit, skip = p.Window(limit, skip)

	return Params{Sort: sort, Order: order, Limit: limit, Skip: skip}
}

// Window acota solo limit/skip; se usa en los listados cuyo orden lo
// decide el ranking (similares) y no el caller.
func (p *Policy) Window(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	} else if limit > p.maxLimit {
		limit = p.maxLimit
	}
	if skip < 0 {
		skip = DefaultSkip
	}
	return limit, skip
}
