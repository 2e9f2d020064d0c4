package tenant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeValidator map[string]bool

func (f fakeValidator) ValidateTenant(_ context.Context, tenantID string) (bool, error) {
	if tenantID == "falha" {
		return false, errors.New("banco indisponível")
	}
	return f[tenantID], nil
}

type missingCounter int

func (m *missingCounter) TenantContextMissing() { *m++ }

func TestTenantMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		actor  *Actor
		status int
	}{
		{"sem ator", nil, http.StatusUnauthorized},
		{"administrador sem tenant", &Actor{Username: "root", IsAdmin: true}, http.StatusOK},
		{"usuário sem tenant", &Actor{Username: "ana"}, http.StatusUnauthorized},
		{"tenant inexistente", &Actor{Username: "ana", TenantID: "T9"}, http.StatusForbidden},
		{"falha ao validar", &Actor{Username: "ana", TenantID: "falha"}, http.StatusInternalServerError},
		{"tenant válido", &Actor{Username: "ana", TenantID: "T1"}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var missing missingCounter
			r := gin.New()
			r.Use(func(c *gin.Context) {
				if tc.actor != nil {
					c.Request = c.Request.WithContext(WithActor(c.Request.Context(), *tc.actor))
				}
			})
			r.Use(TenantMiddleware(fakeValidator{"T1": true}, &missing))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tc.status {
				t.Errorf("status = %d, esperado %d", w.Code, tc.status)
			}
			if tc.name == "usuário sem tenant" && missing != 1 {
				t.Errorf("contador de tenant ausente = %d, esperado 1", missing)
			}
		})
	}
}
