package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	policy := NewPolicy("title", MovieSorts, 100)

	tests := []struct {
		name  string
		sort  string
		order string
		limit int
		skip  int
		want  Params
	}{
		{
			name: "defaults con todo vacío",
			want: Params{Sort: "title", Order: "ASC", Limit: 6, Skip: 0},
		},
		{
			name: "valores válidos pasan tal cual",
			sort: "imdbRating", order: "DESC", limit: 12, skip: 24,
			want: Params{Sort: "imdbRating", Order: "DESC", Limit: 12, Skip: 24},
		},
		{
			name: "sort fuera de whitelist cae al default",
			sort: "m.title DESC; MATCH (n) DELETE n //", order: "ASC", limit: 6,
			want: Params{Sort: "title", Order: "ASC", Limit: 6, Skip: 0},
		},
		{
			name: "order es case-insensitive",
			sort: "released", order: "desc", limit: 6,
			want: Params{Sort: "released", Order: "DESC", Limit: 6, Skip: 0},
		},
		{
			name: "order inválido cae a ASC",
			sort: "title", order: "sideways", limit: 6,
			want: Params{Sort: "title", Order: "ASC", Limit: 6, Skip: 0},
		},
		{
			name: "limit se acota al máximo",
			sort: "title", limit: 5000,
			want: Params{Sort: "title", Order: "ASC", Limit: 100, Skip: 0},
		},
		{
			name: "limit negativo cae al default",
			sort: "title", limit: -3, skip: 10,
			want: Params{Sort: "title", Order: "ASC", Limit: 6, Skip: 10},
		},
		{
			name: "skip negativo se vuelve 0",
			sort: "title", limit: 6, skip: -1,
			want: Params{Sort: "title", Order: "ASC", Limit: 6, Skip: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Normalize(tt.sort, tt.order, tt.limit, tt.skip)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindow(t *testing.T) {
	policy := NewPolicy("name", PersonSorts, 50)

	limit, skip := policy.Window(0, -5)
	assert.Equal(t, DefaultLimit, limit)
	assert.Equal(t, 0, skip)

	limit, skip = policy.Window(200, 10)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 10, skip)
}
