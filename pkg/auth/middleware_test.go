package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

type fakeResolver struct {
	actors map[string]tenant.Actor
}

func (r fakeResolver) ResolveActor(_ context.Context, token string) (tenant.Actor, error) {
	if a, ok := r.actors[token]; ok {
		return a, nil
	}
	return tenant.Actor{}, ErrInvalidToken
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	resolver := fakeResolver{actors: map[string]tenant.Actor{
		"user-token":  {UserID: "U1", Username: "ana", TenantID: "T1"},
		"admin-token": {UserID: "A1", Username: "root", IsAdmin: true},
	}}

	r := gin.New()
	api := r.Group("/", JWTAuthMiddleware(resolver))
	api.GET("/me", func(c *gin.Context) {
		actor, _ := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"username": actor.Username})
	})
	api.GET("/admin", AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := setupRouter()

	cases := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"sem cabeçalho", "/me", "", http.StatusUnauthorized},
		{"formato inválido", "/me", "Token abc", http.StatusUnauthorized},
		{"sessão desconhecida", "/me", "Bearer outro", http.StatusUnauthorized},
		{"usuário autenticado", "/me", "Bearer user-token", http.StatusOK},
		{"usuário comum em rota de administrador", "/admin", "Bearer user-token", http.StatusForbidden},
		{"administrador", "/admin", "Bearer admin-token", http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("status = %d, esperado %d (%s)", w.Code, tc.status, w.Body.String())
			}
		})
	}
}
