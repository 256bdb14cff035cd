package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that all user routes are mounted correctly.
func TestRegisterRoutes(t *testing.T) {
	app, _, _ := newTestApp(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/users/register"},
		{http.MethodPost, "/api/v1/users/login"},
		{http.MethodPost, "/api/v1/users/refresh"},
		{http.MethodPost, "/api/v1/users/logout"},
		{http.MethodPost, "/api/v1/users/logout-all"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 means it doesn't.
			// The actual handlers return other codes (e.g., 400 or 401 for
			// missing body or auth), which is fine for this existence check.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
