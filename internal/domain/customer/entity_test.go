package customer

import (
	"errors"
	"testing"
)

func TestNewCustomer(t *testing.T) {
	t.Run("dados válidos", func(t *testing.T) {
		c, err := NewCustomer(Contact{Name: " Maria ", Email: "maria@exemplo.com", Phone: "1199"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if c.Name != "Maria" || c.ID == "" {
			t.Errorf("cliente inesperado: %+v", c)
		}
	})

	t.Run("nome vazio", func(t *testing.T) {
		if _, err := NewCustomer(Contact{Name: ""}); !errors.Is(err, ErrEmptyName) {
			t.Errorf("esperava ErrEmptyName, obtido %v", err)
		}
	})

	t.Run("email inválido", func(t *testing.T) {
		if _, err := NewCustomer(Contact{Name: "Maria", Email: "nao-e-email"}); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("esperava ErrInvalidEmail, obtido %v", err)
		}
	})
}
