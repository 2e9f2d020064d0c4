package tenant

import "github.com/hugohenrick/gestao-varejo/pkg/domain"

// Erros comuns relacionados ao escopo de tenant
var (
	// ErrTenantUnresolved ocorre quando um usuário comum não tem tenant associado
	ErrTenantUnresolved = domain.NewError(domain.ErrUnauthenticated, "tenant não identificado, faça login novamente")

	// ErrTenantNotFound ocorre quando o tenant do usuário não existe mais
	ErrTenantNotFound = domain.NewError(domain.ErrForbidden, "tenant não encontrado")

	// ErrAdminRequired ocorre quando um usuário comum acessa um recurso administrativo
	ErrAdminRequired = domain.NewError(domain.ErrForbidden, "recurso restrito a administradores")
)
