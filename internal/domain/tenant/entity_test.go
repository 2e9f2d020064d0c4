package tenant

import (
	"errors"
	"testing"

	"github.com/hugohenrick/gestao-varejo/pkg/domain"
)

func TestNewTenant(t *testing.T) {
	tn, err := NewTenant("  Loja Centro ")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if tn.Name != "Loja Centro" || tn.ID == "" {
		t.Errorf("tenant inesperado: %+v", tn)
	}

	if _, err := NewTenant("   "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("esperava erro de validação, obtido %v", err)
	}
}

func TestTenantErrorsKinds(t *testing.T) {
	if !errors.Is(ErrTenantHasUsers, domain.ErrConflict) {
		t.Error("ErrTenantHasUsers deveria ser conflito")
	}
	if !errors.Is(ErrTenantNotFound, domain.ErrNotFound) {
		t.Error("ErrTenantNotFound deveria ser não encontrado")
	}
}
