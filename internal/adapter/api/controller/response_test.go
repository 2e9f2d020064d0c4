package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validação", domain.Validation("nome vazio"), http.StatusBadRequest},
		{"não encontrado", domain.NewError(domain.ErrNotFound, "x"), http.StatusNotFound},
		{"conflito embrulhado", fmt.Errorf("gravar: %w", domain.NewError(domain.ErrConflict, "x")), http.StatusConflict},
		{"estoque insuficiente", sale.ErrInsufficientStock, http.StatusUnprocessableEntity},
		{"tenant não resolvido", tenant.ErrTenantUnresolved, http.StatusUnauthorized},
		{"restrito a administradores", tenant.ErrAdminRequired, http.StatusForbidden},
		{"erro de infraestrutura", errors.New("conexão recusada"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor() = %d, esperado %d", got, tt.want)
			}
		})
	}
}
