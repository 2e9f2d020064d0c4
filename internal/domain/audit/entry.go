package audit

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Operation é a operação registrada pelo gatilho de auditoria
type Operation string

const (
	OperationInsert Operation = "INSERT"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

var ErrInvalidOperation = domain.Validation("operação de auditoria inválida")

// ParseOperation aceita INSERT, UPDATE ou DELETE sem diferenciar maiúsculas
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToUpper(strings.TrimSpace(s))); op {
	case OperationInsert, OperationUpdate, OperationDelete:
		return op, nil
	}
	return "", ErrInvalidOperation
}

// Entry é um registro imutável do log de auditoria.
// É gravado apenas pelo banco de dados.
type Entry struct {
	ID        int64           `json:"id"`
	TableName string          `json:"table_name"`
	Operation Operation       `json:"operation"`
	RecordID  string          `json:"record_id"`
	OldData   json.RawMessage `json:"old_data,omitempty"`
	NewData   json.RawMessage `json:"new_data,omitempty"`
	Username  string          `json:"username"`
	CreatedAt time.Time       `json:"created_at"`
}

// Filter restringe a consulta ao log
type Filter struct {
	Table     string
	Operation Operation
	Username  string
	From      *time.Time
	To        *time.Time
}

// Repository é somente leitura e restrito a administradores
type Repository interface {
	List(ctx context.Context, actor pkgtenant.Actor, filter Filter, limit, offset int) ([]*Entry, error)
	Count(ctx context.Context, actor pkgtenant.Actor, filter Filter) (int, error)
}
