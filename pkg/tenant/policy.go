package tenant

// Column é a coluna que identifica o tenant dono de uma linha
const Column = "tenant_id"

// Scopable é qualquer consulta que aceita um filtro de igualdade
type Scopable[Q any] interface {
	Where(column string, value any) Q
}

// FilterForRead restringe uma consulta às linhas visíveis para o ator.
// Administradores veem tudo; usuários comuns apenas o próprio tenant.
// O mesmo filtro vale para alterações e exclusões de linhas existentes.
func FilterForRead[Q Scopable[Q]](q Q, actor Actor) (Q, error) {
	if actor.IsAdmin {
		return q, nil
	}
	if !actor.HasTenant() {
		return q, ErrTenantUnresolved
	}
	return q.Where(Column, actor.TenantID), nil
}

// TenantIDForInsert retorna o tenant a gravar em uma nova linha.
// Para administradores retorna nil e a linha fica sem tenant.
func TenantIDForInsert(actor Actor) (*string, error) {
	if actor.IsAdmin {
		return nil, nil
	}
	if !actor.HasTenant() {
		return nil, ErrTenantUnresolved
	}
	id := actor.TenantID
	return &id, nil
}

// ChooseTenantForInsert permite que um administrador escolha o tenant da nova linha.
// Usuários comuns sempre gravam no próprio tenant, ignorando a escolha.
func ChooseTenantForInsert(actor Actor, chosen *string) (*string, error) {
	if actor.IsAdmin {
		if chosen != nil && *chosen == "" {
			return nil, nil
		}
		return chosen, nil
	}
	return TenantIDForInsert(actor)
}

// CanAccess informa se o ator enxerga uma linha pertencente a rowTenant
func CanAccess(actor Actor, rowTenant *string) bool {
	if actor.IsAdmin {
		return true
	}
	return actor.HasTenant() && rowTenant != nil && *rowTenant == actor.TenantID
}

// RequireAdmin retorna ErrAdminRequired para usuários comuns
func RequireAdmin(actor Actor) error {
	if !actor.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}
