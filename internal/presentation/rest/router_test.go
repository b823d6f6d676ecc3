package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/pkg/auth"
)

func TestRouterRoleGuards(t *testing.T) {
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     "test-secret",
		Issuer:     "dentara",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	rt := &Router{
		JWT:       jwtSvc,
		RateLimit: NewRateLimiter(time.Minute, 100),
	}
	handler := rt.Handler()

	token, err := jwtSvc.GenerateToken(uuid.New(), uuid.New(), []string{auth.RoleReception})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/"+uuid.NewString(), nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
