package domain

import "errors"

// Categorias de erro usadas para decidir o status HTTP de uma falha.
// Erros específicos de cada entidade embrulham uma destas categorias.
var (
	ErrValidation      = errors.New("dados inválidos")
	ErrNotFound        = errors.New("registro não encontrado")
	ErrConflict        = errors.New("conflito com registros existentes")
	ErrForbidden       = errors.New("acesso negado")
	ErrUnauthenticated = errors.New("autenticação requerida")
	ErrUnprocessable   = errors.New("operação não pode ser processada")
)

// kindError associa uma mensagem específica a uma categoria
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewError cria um erro com mensagem própria pertencente à categoria kind.
// errors.Is(err, kind) retorna true para o erro criado.
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Validation cria um erro de validação
func Validation(msg string) error {
	return NewError(ErrValidation, msg)
}

// KindOf retorna a categoria de err, ou nil se o erro não pertencer a nenhuma
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrForbidden, ErrUnauthenticated, ErrUnprocessable} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
