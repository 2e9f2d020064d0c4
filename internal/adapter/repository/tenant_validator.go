package repository

import (
	"context"

	"github.com/hugohenrick/gestao-varejo/internal/domain/tenant"
)

// TenantValidator implementa a interface para validação de tenant
type TenantValidator struct {
	repository tenant.Repository
}

// NewTenantValidator cria uma nova instância de TenantValidator
func NewTenantValidator(repository tenant.Repository) *TenantValidator {
	return &TenantValidator{
		repository: repository,
	}
}

// ValidateTenant verifica se o tenant da sessão ainda existe
func (v *TenantValidator) ValidateTenant(ctx context.Context, tenantID string) (bool, error) {
	if tenantID == "" {
		return false, nil
	}
	return v.repository.Exists(ctx, tenantID)
}
