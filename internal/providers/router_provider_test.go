package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRouterProvider_GetAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/sections/", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/sections/", routes[0].Url)
}

func TestRouterProvider_PostAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/actions/subscription", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/actions/subscription", routes[0].Url)
}

func TestRouterProvider_MultipleRoutesKeepOrder(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/", dummyHandler())
	rp.Get("/sections/", dummyHandler())
	rp.Post("/actions/scripts/delete", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/", routes[0].Url)
	assert.Equal(t, "/sections/", routes[1].Url)
	assert.Equal(t, "/actions/scripts/delete", routes[2].Url)
}

func TestMethodHandler_AllowsMatchingMethod(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/sections/", dummyHandler())

	req := httptest.NewRequest(http.MethodGet, "/sections/overview", nil)
	rr := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMethodHandler_RejectsWrongMethod(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/actions/subscription", dummyHandler())

	req := httptest.NewRequest(http.MethodGet, "/actions/subscription", nil)
	rr := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
