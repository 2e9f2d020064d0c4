package tenant

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TenantValidator define a interface para validação de tenant
type TenantValidator interface {
	ValidateTenant(ctx context.Context, tenantID string) (bool, error)
}

// MissingRecorder conta requisições de usuários sem tenant
type MissingRecorder interface {
	TenantContextMissing()
}

// TenantMiddleware valida o tenant do ator autenticado.
// Deve ser registrado depois do middleware de autenticação. recorder pode ser nil.
func TenantMiddleware(validator TenantValidator, recorder MissingRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c.Request.Context())
		if !ok {
			abort(c, http.StatusUnauthorized, "Autenticação requerida", "")
			return
		}

		// Administradores não pertencem a um tenant
		if actor.IsAdmin {
			c.Next()
			return
		}

		if !actor.HasTenant() {
			if recorder != nil {
				recorder.TenantContextMissing()
			}
			abort(c, http.StatusUnauthorized, ErrTenantUnresolved.Error(), "")
			return
		}

		valid, err := validator.ValidateTenant(c.Request.Context(), actor.TenantID)
		if err != nil {
			abort(c, http.StatusInternalServerError, "Erro ao validar tenant", err.Error())
			return
		}

		if !valid {
			abort(c, http.StatusForbidden, "Tenant inválido", "O tenant do usuário não existe mais")
			return
		}

		c.Set("tenant_id", actor.TenantID)
		c.Next()
	}
}

// abort encerra a requisição no mesmo formato de dto.ErrorResponse.
func abort(c *gin.Context, status int, message, details string) {
	body := gin.H{"code": status, "message": message}
	if details != "" {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, body)
}
