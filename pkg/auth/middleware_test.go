package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := RequireRole(next, RoleOwner, RoleAdmin)

	serve := func(claims *Claims) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/categories/1", nil)
		if claims != nil {
			req = req.WithContext(ContextWithClaims(req.Context(), claims))
		}
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		return rec
	}

	t.Run("passes a matching role", func(t *testing.T) {
		rec := serve(&Claims{Roles: []string{RoleAdmin}})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejects a non-matching role", func(t *testing.T) {
		rec := serve(&Claims{Roles: []string{RoleReception}})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects missing claims", func(t *testing.T) {
		rec := serve(nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
