package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{Secret: "test-secret", Issuer: "fitplan.test"}

func TestSignAndParseRoundTrip(t *testing.T) {
	token, err := Sign(testConfig, "user-1", "tenant-1", []string{ScopeProgramsRead, ScopeProgramsWrite}, time.Hour)
	require.NoError(t, err)

	claims, err := ParseClaims(token, testConfig)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.True(t, claims.HasScope(ScopeProgramsWrite))
	assert.True(t, claims.HasAnyScope("other", ScopeProgramsRead))
	assert.False(t, claims.HasScope("admin"))
}

func TestParseClaimsRejectsBadTokens(t *testing.T) {
	wrongIssuer, err := Sign(Config{Secret: testConfig.Secret, Issuer: "someone-else"}, "u", "t", nil, time.Hour)
	require.NoError(t, err)
	wrongSecret, err := Sign(Config{Secret: "nope", Issuer: testConfig.Issuer}, "u", "t", nil, time.Hour)
	require.NoError(t, err)
	expired, err := Sign(testConfig, "u", "t", nil, -time.Minute)
	require.NoError(t, err)
	noTenant, err := Sign(testConfig, "u", "", nil, time.Hour)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"issuer":  wrongIssuer,
		"secret":  wrongSecret,
		"expired": expired,
		"tenant":  noTenant,
		"garbage": "not-a-jwt",
	} {
		_, err := ParseClaims(token, testConfig)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}

	_, err = ParseClaims("  ", testConfig)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestMiddleware(t *testing.T) {
	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := NewMiddleware(testConfig).Wrap(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/programs", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "unauthorized")

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	token, err := Sign(testConfig, "user-1", "tenant-1", []string{ScopeProgramsRead}, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/v1/programs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "tenant-1", seen.TenantID)
}
