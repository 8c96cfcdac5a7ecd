package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	testCases := []struct {
		url            string
		expectedOffset int
		expectedLimit  int
	}{
		{url: "/catalog", expectedOffset: 0, expectedLimit: 10},
		{url: "/catalog?offset=1&limit=2", expectedOffset: 1, expectedLimit: 2},
		{url: "/catalog?offset=-10&limit=200", expectedOffset: 0, expectedLimit: 100},
		{url: "/catalog?limit=0", expectedOffset: 0, expectedLimit: 1},
		{url: "/catalog?offset=abc&limit=xyz", expectedOffset: 0, expectedLimit: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			offset, limit := Pagination(httptest.NewRequest(http.MethodGet, tc.url, nil))
			assert.Equal(t, tc.expectedOffset, offset)
			assert.Equal(t, tc.expectedLimit, limit)
		})
	}
}

func TestPage(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"b", "c"}, Page(items, 1, 2))
	assert.Equal(t, []string{"d"}, Page(items, 3, 10))
	assert.Empty(t, Page(items, 10, 2))
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorResponse(rec, http.StatusNotFound, "product not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"product not found"}`, rec.Body.String())
}
