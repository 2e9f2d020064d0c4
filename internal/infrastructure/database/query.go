package database

import (
	"fmt"
	"strings"
)

// operadores aceitos em WhereOp
var allowedOps = map[string]bool{"=": true, "<>": true, ">": true, ">=": true, "<": true, "<=": true, "ILIKE": true}

type filter struct {
	column string
	op     string
	value  any
}

// Assignment é um par coluna/valor de um UPDATE
type Assignment struct {
	Column string
	Value  any
}

// Set cria uma Assignment
func Set(column string, value any) Assignment {
	return Assignment{Column: column, Value: value}
}

// Query descreve uma consulta com filtros de igualdade sobre uma tabela.
// É imutável: cada método retorna uma cópia.
type Query struct {
	table   string
	alias   string
	columns []string
	joins   []string
	filters []filter
	orderBy string
	limit   int
	offset  int
}

// From inicia uma consulta sobre table
func From(table string) Query {
	return Query{table: table}
}

// As define o alias da tabela principal; filtros sem prefixo usam o alias
func (q Query) As(alias string) Query {
	q.alias = alias
	return q
}

// Select define as colunas retornadas
func (q Query) Select(columns ...string) Query {
	q.columns = append([]string(nil), columns...)
	return q
}

// Join adiciona uma cláusula de junção literal
func (q Query) Join(clause string) Query {
	q.joins = append(append([]string(nil), q.joins...), clause)
	return q
}

// Where adiciona um filtro de igualdade. Valor nil vira IS NULL.
func (q Query) Where(column string, value any) Query {
	return q.WhereOp(column, "=", value)
}

// WhereOp adiciona um filtro com operador de comparação
func (q Query) WhereOp(column, op string, value any) Query {
	q.filters = append(append([]filter(nil), q.filters...), filter{column: column, op: op, value: value})
	return q
}

// OrderBy define a ordenação
func (q Query) OrderBy(expr string) Query {
	q.orderBy = expr
	return q
}

// Page define limite e deslocamento; limite zero não pagina
func (q Query) Page(limit, offset int) Query {
	q.limit = limit
	q.offset = offset
	return q
}

func (q Query) source() string {
	if q.alias != "" {
		return q.table + " " + q.alias
	}
	return q.table
}

func (q Query) qualify(column string) string {
	if q.alias == "" || strings.Contains(column, ".") {
		return column
	}
	return q.alias + "." + column
}

// where monta a cláusula WHERE numerando os argumentos a partir de start
func (q Query) where(start int) (string, []any, error) {
	if len(q.filters) == 0 {
		return "", nil, nil
	}
	parts := make([]string, 0, len(q.filters))
	args := make([]any, 0, len(q.filters))
	n := start
	for _, f := range q.filters {
		if !allowedOps[f.op] {
			return "", nil, fmt.Errorf("operador não suportado: %s", f.op)
		}
		col := q.qualify(f.column)
		if f.value == nil {
			switch f.op {
			case "=":
				parts = append(parts, col+" IS NULL")
			case "<>":
				parts = append(parts, col+" IS NOT NULL")
			default:
				return "", nil, fmt.Errorf("operador %s não aceita valor nulo", f.op)
			}
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s $%d", col, f.op, n))
		args = append(args, f.value)
		n++
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

// BuildSelect gera o SELECT e seus argumentos
func (q Query) BuildSelect() (string, []any, error) {
	cols := "*"
	if len(q.columns) > 0 {
		cols = strings.Join(q.columns, ", ")
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + cols + " FROM " + q.source())
	for _, j := range q.joins {
		sb.WriteString(" " + j)
	}

	where, args, err := q.where(1)
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(where)

	if q.orderBy != "" {
		sb.WriteString(" ORDER BY " + q.orderBy)
	}
	if q.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d OFFSET %d", q.limit, q.offset))
	}
	return sb.String(), args, nil
}

// BuildCount gera um SELECT COUNT(*) com os mesmos filtros
func (q Query) BuildCount() (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM " + q.source())
	for _, j := range q.joins {
		sb.WriteString(" " + j)
	}
	where, args, err := q.where(1)
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(where)
	return sb.String(), args, nil
}

// BuildUpdate gera um UPDATE restrito pelos filtros da consulta.
// Joins, alias e paginação são ignorados.
func (q Query) BuildUpdate(set []Assignment) (string, []any, error) {
	if len(set) == 0 {
		return "", nil, fmt.Errorf("nenhuma coluna para atualizar")
	}
	if len(q.filters) == 0 {
		return "", nil, fmt.Errorf("UPDATE sem filtro não permitido")
	}

	parts := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+len(q.filters))
	for i, a := range set {
		parts = append(parts, fmt.Sprintf("%s = $%d", a.Column, i+1))
		args = append(args, a.Value)
	}

	plain := q
	plain.alias = ""
	where, whereArgs, err := plain.where(len(set) + 1)
	if err != nil {
		return "", nil, err
	}
	args = append(args, whereArgs...)

	return "UPDATE " + q.table + " SET " + strings.Join(parts, ", ") + where, args, nil
}

// BuildDelete gera um DELETE restrito pelos filtros da consulta
func (q Query) BuildDelete() (string, []any, error) {
	if len(q.filters) == 0 {
		return "", nil, fmt.Errorf("DELETE sem filtro não permitido")
	}
	plain := q
	plain.alias = ""
	where, args, err := plain.where(1)
	if err != nil {
		return "", nil, err
	}
	return "DELETE FROM " + q.table + where, args, nil
}
