package route

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

type fakeResolver map[string]tenant.Actor

func (f fakeResolver) ResolveActor(_ context.Context, token string) (tenant.Actor, error) {
	actor, ok := f[token]
	if !ok {
		return tenant.Actor{}, errors.New("sessão não encontrada")
	}
	return actor, nil
}

type allowAll struct{}

func (allowAll) ValidateTenant(context.Context, string) (bool, error) { return true, nil }

func TestProtectedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := fakeResolver{
		"loja":    {UserID: "U1", Username: "ana", TenantID: "T1"},
		"semloja": {UserID: "U2", Username: "bia"},
	}

	router := gin.New()
	api := router.Group("/api/v1")
	protected := api.Group("")
	protected.Use(auth.JWTAuthMiddleware(resolver), tenant.TenantMiddleware(allowAll{}, nil))
	SetupUserRoutes(protected, controller.NewUserController(nil, logger.NewNop()))
	SetupTenantRoutes(protected, controller.NewTenantController(nil, logger.NewNop()))

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{name: "sem token", path: "/api/v1/users", status: http.StatusUnauthorized},
		{name: "token desconhecido", path: "/api/v1/users", token: "x", status: http.StatusUnauthorized},
		{name: "usuário sem loja", path: "/api/v1/tenants", token: "semloja", status: http.StatusUnauthorized},
		{name: "usuário comum em rota de administrador", path: "/api/v1/users", token: "loja", status: http.StatusForbidden},
		{name: "usuário comum em lojas", path: "/api/v1/tenants", token: "loja", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %d, esperado %d", w.Code, tt.status)
			}
		})
	}
}
