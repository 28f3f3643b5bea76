package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A dedicated server per test so a drained bucket never bleeds into
// other suites.
func TestRateLimit_AuthRoutes(t *testing.T) {
	ts := testutil.NewTestServer(t)

	body, err := json.Marshal(map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	require.NoError(t, err)

	post := func() *http.Response {
		resp, err := http.Post(ts.URL("/auth/login"), "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		return resp
	}

	// The burst allows the first requests through; hammering past it
	// must start returning 429 long before the bucket refills.
	var limited *http.Response
	for i := 0; i < 4*ts.Config.AuthRateBurst; i++ {
		resp := post()
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = resp
			break
		}
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}

	require.NotNil(t, limited, "burst exhaustion never produced a 429")
	defer limited.Body.Close()
	testutil.AssertErrorEnvelope(t, limited, http.StatusTooManyRequests, "too many requests")
}
