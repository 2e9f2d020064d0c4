package sale

import (
	"context"

	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/shopspring/decimal"
)

// Tx reúne as leituras e escritas de uma venda dentro de uma única transação.
// Todas as operações respeitam o escopo de tenant do ator da transação.
type Tx interface {
	// FindProduct relê o produto no momento da operação
	FindProduct(ctx context.Context, id string) (*product.Product, error)

	// CustomerExists informa se o cliente existe e é visível
	CustomerExists(ctx context.Context, id string) (bool, error)

	// FindSale busca a venda a ser alterada
	FindSale(ctx context.Context, id string) (*Sale, error)

	// AdjustStock soma delta ao estoque apenas se o resultado não ficar negativo.
	// Retorna false quando nenhuma linha foi alterada.
	AdjustStock(ctx context.Context, productID string, delta int) (bool, error)

	// SetSalePrice atualiza o preço de venda do catálogo
	SetSalePrice(ctx context.Context, productID string, price decimal.Decimal) error

	InsertSale(ctx context.Context, s *Sale) error
	UpdateSale(ctx context.Context, s *Sale) error
	DeleteSale(ctx context.Context, id string) error
}

// UnitOfWork executa fn em uma transação identificada pelo ator
type UnitOfWork interface {
	Within(ctx context.Context, actor pkgtenant.Actor, fn func(tx Tx) error) error
}

// Repository define as leituras de vendas
type Repository interface {
	FindByID(ctx context.Context, actor pkgtenant.Actor, id string) (*View, error)
	List(ctx context.Context, actor pkgtenant.Actor, filter ListFilter, limit, offset int) ([]*View, error)
	Count(ctx context.Context, actor pkgtenant.Actor, filter ListFilter) (int, error)
}

// Publisher envia eventos para outros sistemas
type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// Recorder registra métricas das operações de venda
type Recorder interface {
	SaleOperation(operation, outcome string)
}
