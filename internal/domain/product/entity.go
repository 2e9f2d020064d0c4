package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName              = domain.Validation("nome do produto não pode ser vazio")
	ErrNegativePrice          = domain.Validation("preços não podem ser negativos")
	ErrNegativeQuantity       = domain.Validation("quantidade em estoque não pode ser negativa")
	ErrMissingVersion         = domain.Validation("versão do produto é obrigatória na atualização")
	ErrInvalidCatalog         = domain.Validation("catálogo inválido, use stock ou order")
	ErrProductNotFound        = domain.NewError(domain.ErrNotFound, "produto não encontrado")
	ErrProductInUse           = domain.NewError(domain.ErrConflict, "não é possível excluir um produto com encomendas vinculadas")
	ErrConcurrentModification = domain.NewError(domain.ErrConflict, "o produto foi alterado por outro usuário, recarregue e tente novamente")
)

// Product representa um item do catálogo com estoque próprio
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CategoryID     *string         `json:"category_id"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	Quantity       int             `json:"quantity"`
	IsOrderProduct bool            `json:"is_order_product"`
	Version        int             `json:"version"`
	TenantID       *string         `json:"tenant_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Details agrupa os campos editáveis de um produto
type Details struct {
	Name           string
	CategoryID     *string
	CostPrice      decimal.Decimal
	SalePrice      decimal.Decimal
	Quantity       int
	IsOrderProduct bool
}

// NewProduct cria um novo produto
func NewProduct(d Details) (*Product, error) {
	now := time.Now()
	p := &Product{
		ID:        uuid.New().String(),
		Version:   1,
		CreatedAt: now,
	}
	if err := p.Apply(d); err != nil {
		return nil, err
	}
	p.UpdatedAt = now
	return p, nil
}

// Apply valida e aplica os campos editáveis
func (p *Product) Apply(d Details) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrEmptyName
	}
	if d.CostPrice.IsNegative() || d.SalePrice.IsNegative() {
		return ErrNegativePrice
	}
	if d.Quantity < 0 {
		return ErrNegativeQuantity
	}

	p.Name = name
	p.CategoryID = d.CategoryID
	if p.CategoryID != nil && *p.CategoryID == "" {
		p.CategoryID = nil
	}
	p.CostPrice = d.CostPrice
	p.SalePrice = d.SalePrice
	p.Quantity = d.Quantity
	p.IsOrderProduct = d.IsOrderProduct
	p.UpdatedAt = time.Now()
	return nil
}

// StockValue é o valor do estoque a preço de custo
func (p *Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Catalog seleciona quais produtos são listados
type Catalog string

const (
	// CatalogAll lista todos os produtos
	CatalogAll Catalog = ""
	// CatalogStock exclui produtos sob encomenda
	CatalogStock Catalog = "stock"
	// CatalogOrder lista apenas produtos sob encomenda
	CatalogOrder Catalog = "order"
)

// ParseCatalog valida o catálogo informado na listagem
func ParseCatalog(s string) (Catalog, error) {
	switch c := Catalog(s); c {
	case CatalogAll, CatalogStock, CatalogOrder:
		return c, nil
	default:
		return "", ErrInvalidCatalog
	}
}

// ListFilter restringe a listagem de produtos
type ListFilter struct {
	Catalog    Catalog
	CategoryID string
	Name       string
}
