// file: internals/helpers/pagination_test.go
package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   Paging
	}{
		{"defaults", "/items", Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
		{"explicit page", "/items?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "/items?limit=40", Paging{Page: 1, PerPage: 40, Offset: 0, Limit: 40}},
		{"per_page wins over limit", "/items?per_page=5&limit=50", Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}},
		{"capped at max", "/items?per_page=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"zero page clamps to first", "/items?page=0", Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
		{"negative per_page falls back", "/items?per_page=-4", Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
		{"garbage input falls back", "/items?page=abc&per_page=xyz", Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveFor(t, tt.target, 25, 100))
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}

	meta := BuildPagination(p, 35, 10)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 10, meta.Count)

	last := BuildPagination(Paging{Page: 4, PerPage: 10}, 35, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := BuildPagination(Paging{Page: 1, PerPage: 10}, 0, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
