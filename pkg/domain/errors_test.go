package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	notFound := NewError(ErrNotFound, "produto não encontrado")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "validação", err: Validation("nome vazio"), want: ErrValidation},
		{name: "erro embrulhado", err: fmt.Errorf("repositório: %w", notFound), want: ErrNotFound},
		{name: "sem categoria", err: errors.New("conexão recusada"), want: nil},
		{name: "nil", err: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, esperado %v", got, tt.want)
			}
		})
	}

	if notFound.Error() != "produto não encontrado" {
		t.Errorf("mensagem = %q", notFound.Error())
	}
}
