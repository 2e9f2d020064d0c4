package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Group é o total acumulado de uma chave
type Group struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// Sum soma value sobre todas as linhas
func Sum[T any](rows []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(value(r))
	}
	return total
}

// GroupSum agrupa por chave mantendo a ordem em que cada chave aparece
func GroupSum[T any](rows []T, key func(T) string, value func(T) decimal.Decimal) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, r := range rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(value(r))
	}
	return groups
}

// TopN retorna as n linhas de maior métrica em ordem decrescente.
// Empates mantêm a ordem de entrada. n <= 0 retorna todas.
func TopN[T any](rows []T, n int, metric func(T) decimal.Decimal) []T {
	sorted := make([]T, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metric(sorted[i]).GreaterThan(metric(sorted[j]))
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Period define o tamanho do intervalo de agrupamento por data
type Period string

const (
	Day   Period = "day"
	Month Period = "month"
)

// Key formata a chave do intervalo que contém t
func (p Period) Key(t time.Time) string {
	if p == Month {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// BucketByPeriod soma value por dia ou mês, em ordem cronológica das chaves
func BucketByPeriod[T any](rows []T, period Period, date func(T) time.Time, value func(T) decimal.Decimal) []Group {
	groups := GroupSum(rows, func(r T) string { return period.Key(date(r)) }, value)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}
