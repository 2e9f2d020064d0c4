package sale

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/customer"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
	"github.com/shopspring/decimal"
)

// memoryStore simula o banco com transações que desfazem tudo em caso de erro
type memoryStore struct {
	products  map[string]product.Product
	customers map[string]*string
	sales     map[string]Sale
	stamped   []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		products:  map[string]product.Product{},
		customers: map[string]*string{},
		sales:     map[string]Sale{},
	}
}

func (m *memoryStore) Within(ctx context.Context, actor pkgtenant.Actor, fn func(tx Tx) error) error {
	if actor.Username == "" {
		return errors.New("usuário não identificado")
	}
	m.stamped = append(m.stamped, actor.Username)

	products := make(map[string]product.Product, len(m.products))
	for k, v := range m.products {
		products[k] = v
	}
	sales := make(map[string]Sale, len(m.sales))
	for k, v := range m.sales {
		sales[k] = v
	}

	tx := &memoryTx{store: m, actor: actor}
	if err := fn(tx); err != nil {
		m.products = products
		m.sales = sales
		return err
	}
	return nil
}

type memoryTx struct {
	store *memoryStore
	actor pkgtenant.Actor
}

func (t *memoryTx) visible(tenantID *string) bool {
	return pkgtenant.CanAccess(t.actor, tenantID)
}

func (t *memoryTx) FindProduct(ctx context.Context, id string) (*product.Product, error) {
	p, ok := t.store.products[id]
	if !ok || !t.visible(p.TenantID) {
		return nil, product.ErrProductNotFound
	}
	return &p, nil
}

func (t *memoryTx) CustomerExists(ctx context.Context, id string) (bool, error) {
	tenantID, ok := t.store.customers[id]
	return ok && t.visible(tenantID), nil
}

func (t *memoryTx) FindSale(ctx context.Context, id string) (*Sale, error) {
	s, ok := t.store.sales[id]
	if !ok || !t.visible(s.TenantID) {
		return nil, ErrSaleNotFound
	}
	return &s, nil
}

func (t *memoryTx) AdjustStock(ctx context.Context, productID string, delta int) (bool, error) {
	p, ok := t.store.products[productID]
	if !ok || !t.visible(p.TenantID) || p.Quantity+delta < 0 {
		return false, nil
	}
	p.Quantity += delta
	p.Version++
	t.store.products[productID] = p
	return true, nil
}

func (t *memoryTx) SetSalePrice(ctx context.Context, productID string, price decimal.Decimal) error {
	p := t.store.products[productID]
	p.SalePrice = price
	t.store.products[productID] = p
	return nil
}

func (t *memoryTx) InsertSale(ctx context.Context, s *Sale) error {
	t.store.sales[s.ID] = *s
	return nil
}

func (t *memoryTx) UpdateSale(ctx context.Context, s *Sale) error {
	t.store.sales[s.ID] = *s
	return nil
}

func (t *memoryTx) DeleteSale(ctx context.Context, id string) error {
	delete(t.store.sales, id)
	return nil
}

type capturePublisher struct {
	movements []Movement
}

func (c *capturePublisher) Publish(ctx context.Context, key string, payload any) error {
	c.movements = append(c.movements, payload.(Movement))
	return nil
}

type countRecorder map[string]int

func (c countRecorder) SaleOperation(operation, outcome string) {
	c[operation+":"+outcome]++
}

var (
	tenantA = "T1"
	tenantB = "T2"
	seller  = pkgtenant.Actor{UserID: "U1", Username: "vendedor", TenantID: tenantA}
	admin   = pkgtenant.Actor{UserID: "U0", Username: "admin", IsAdmin: true}
	day     = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
)

func setup(quantity int) (*memoryStore, *Service, *capturePublisher, countRecorder) {
	store := newMemoryStore()
	store.products["P1"] = product.Product{
		ID:        "P1",
		Name:      "Bolo",
		SalePrice: decimal.NewFromInt(10),
		Quantity:  quantity,
		TenantID:  &tenantA,
		Version:   1,
	}
	store.customers["C1"] = &tenantA
	pub := &capturePublisher{}
	rec := countRecorder{}
	return store, NewService(store, pub, rec, logger.NewNop()), pub, rec
}

func createInput(quantity int, price int64) CreateInput {
	return CreateInput{
		CustomerID: "C1",
		ProductID:  "P1",
		Quantity:   quantity,
		UnitPrice:  decimal.NewFromInt(price),
		SaleDate:   day,
		Paid:       true,
	}
}

func TestCreateSale(t *testing.T) {
	t.Run("baixa estoque e calcula total", func(t *testing.T) {
		store, svc, pub, _ := setup(5)

		s, err := svc.Create(context.Background(), seller, createInput(3, 10))
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !s.TotalPrice.Equal(decimal.NewFromInt(30)) {
			t.Errorf("total = %s, esperado 30", s.TotalPrice)
		}
		if s.TenantID == nil || *s.TenantID != tenantA {
			t.Errorf("venda deveria pertencer ao tenant do vendedor")
		}
		if got := store.products["P1"].Quantity; got != 2 {
			t.Errorf("estoque = %d, esperado 2", got)
		}
		if len(pub.movements) != 1 || pub.movements[0].Delta != -3 || pub.movements[0].Username != "vendedor" {
			t.Errorf("movimentação inesperada: %+v", pub.movements)
		}
		if len(store.stamped) != 1 || store.stamped[0] != "vendedor" {
			t.Errorf("transação deveria ser identificada pelo usuário, obtido %v", store.stamped)
		}
	})

	t.Run("estoque insuficiente não grava nada", func(t *testing.T) {
		store, svc, pub, rec := setup(5)

		_, err := svc.Create(context.Background(), seller, createInput(6, 10))
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("esperava ErrInsufficientStock, obtido %v", err)
		}
		if got := store.products["P1"].Quantity; got != 5 {
			t.Errorf("estoque = %d, esperado 5", got)
		}
		if len(store.sales) != 0 {
			t.Errorf("nenhuma venda deveria ter sido criada")
		}
		if len(pub.movements) != 0 {
			t.Errorf("nenhum evento deveria ter sido publicado")
		}
		if rec["create:insufficient_stock"] != 1 {
			t.Errorf("métrica de estoque insuficiente não registrada: %v", rec)
		}
	})

	t.Run("preço diferente atualiza o catálogo", func(t *testing.T) {
		store, svc, _, _ := setup(5)

		if _, err := svc.Create(context.Background(), seller, createInput(1, 12)); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if got := store.products["P1"].SalePrice; !got.Equal(decimal.NewFromInt(12)) {
			t.Errorf("preço de venda = %s, esperado 12", got)
		}
	})

	t.Run("validação antes de qualquer escrita", func(t *testing.T) {
		store, svc, _, _ := setup(5)

		_, err := svc.Create(context.Background(), seller, createInput(0, 10))
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("esperava ErrInvalidQuantity, obtido %v", err)
		}
		if len(store.stamped) != 0 {
			t.Error("nenhuma transação deveria ter sido aberta")
		}
	})

	t.Run("usuário sem tenant é rejeitado antes da escrita", func(t *testing.T) {
		store, svc, _, _ := setup(5)

		_, err := svc.Create(context.Background(), pkgtenant.Actor{Username: "perdido"}, createInput(1, 10))
		if !errors.Is(err, pkgtenant.ErrTenantUnresolved) {
			t.Errorf("esperava ErrTenantUnresolved, obtido %v", err)
		}
		if len(store.stamped) != 0 {
			t.Error("nenhuma transação deveria ter sido aberta")
		}
	})

	t.Run("produto de outro tenant não é encontrado", func(t *testing.T) {
		store, svc, _, _ := setup(5)
		store.products["P2"] = product.Product{ID: "P2", Quantity: 10, TenantID: &tenantB}

		in := createInput(1, 10)
		in.ProductID = "P2"
		_, err := svc.Create(context.Background(), seller, in)
		if !errors.Is(err, product.ErrProductNotFound) {
			t.Errorf("esperava ErrProductNotFound, obtido %v", err)
		}
		if store.products["P2"].Quantity != 10 {
			t.Error("estoque de outro tenant não deveria mudar")
		}
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		_, svc, _, _ := setup(5)

		in := createInput(1, 10)
		in.CustomerID = "C9"
		if _, err := svc.Create(context.Background(), seller, in); !errors.Is(err, customer.ErrCustomerNotFound) {
			t.Errorf("esperava ErrCustomerNotFound, obtido %v", err)
		}
	})

	t.Run("administrador herda o tenant do produto", func(t *testing.T) {
		_, svc, _, _ := setup(5)

		s, err := svc.Create(context.Background(), admin, createInput(1, 10))
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if s.TenantID == nil || *s.TenantID != tenantA {
			t.Errorf("venda do administrador deveria herdar o tenant do produto")
		}
	})
}

func TestUpdateSale(t *testing.T) {
	t.Run("atualização dentro da disponibilidade", func(t *testing.T) {
		store, svc, _, _ := setup(8)
		s, err := svc.Create(context.Background(), seller, createInput(3, 10))
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if store.products["P1"].Quantity != 5 {
			t.Fatalf("estoque após a venda = %d, esperado 5", store.products["P1"].Quantity)
		}

		updated, err := svc.Update(context.Background(), seller, s.ID, UpdateInput{
			CustomerID: "C1", Quantity: 7, UnitPrice: decimal.NewFromInt(10), SaleDate: day, Paid: true,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if got := store.products["P1"].Quantity; got != 1 {
			t.Errorf("estoque = %d, esperado 1", got)
		}
		if !updated.TotalPrice.Equal(decimal.NewFromInt(70)) {
			t.Errorf("total = %s, esperado 70", updated.TotalPrice)
		}
	})

	t.Run("acima da disponibilidade não grava nada", func(t *testing.T) {
		store, svc, _, _ := setup(8)
		s, _ := svc.Create(context.Background(), seller, createInput(3, 10))

		_, err := svc.Update(context.Background(), seller, s.ID, UpdateInput{
			CustomerID: "C1", Quantity: 9, UnitPrice: decimal.NewFromInt(15), SaleDate: day,
		})
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("esperava ErrInsufficientStock, obtido %v", err)
		}
		if store.products["P1"].Quantity != 5 || store.sales[s.ID].Quantity != 3 {
			t.Error("estoque e venda deveriam permanecer inalterados")
		}
		if !store.products["P1"].SalePrice.Equal(decimal.NewFromInt(10)) {
			t.Error("preço não deveria mudar em operação rejeitada")
		}
	})

	t.Run("venda de outro tenant não é encontrada", func(t *testing.T) {
		store, svc, _, _ := setup(8)
		s, _ := svc.Create(context.Background(), seller, createInput(3, 10))

		other := pkgtenant.Actor{Username: "outro", TenantID: tenantB}
		_, err := svc.Update(context.Background(), other, s.ID, UpdateInput{
			CustomerID: "C1", Quantity: 1, UnitPrice: decimal.NewFromInt(10), SaleDate: day,
		})
		if !errors.Is(err, ErrSaleNotFound) {
			t.Errorf("esperava ErrSaleNotFound, obtido %v", err)
		}
		if store.sales[s.ID].Quantity != 3 {
			t.Error("venda não deveria mudar")
		}
	})

	t.Run("produto excluído não movimenta estoque", func(t *testing.T) {
		store, svc, _, _ := setup(8)
		s, _ := svc.Create(context.Background(), seller, createInput(3, 10))
		orphan := store.sales[s.ID]
		orphan.ProductID = nil
		store.sales[s.ID] = orphan
		delete(store.products, "P1")

		updated, err := svc.Update(context.Background(), seller, s.ID, UpdateInput{
			CustomerID: "C1", Quantity: 4, UnitPrice: decimal.NewFromInt(10), SaleDate: day,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if updated.Quantity != 4 {
			t.Errorf("quantidade = %d, esperado 4", updated.Quantity)
		}
	})
}

func TestDeleteSale(t *testing.T) {
	t.Run("devolve o estoque", func(t *testing.T) {
		store, svc, _, _ := setup(5)
		s, _ := svc.Create(context.Background(), seller, createInput(2, 10))

		if err := svc.Delete(context.Background(), seller, s.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if got := store.products["P1"].Quantity; got != 5 {
			t.Errorf("estoque = %d, esperado 5", got)
		}
		if _, ok := store.sales[s.ID]; ok {
			t.Error("venda deveria ter sido excluída")
		}
	})

	t.Run("produto inexistente não impede a exclusão", func(t *testing.T) {
		store, svc, pub, _ := setup(5)
		s, _ := svc.Create(context.Background(), seller, createInput(2, 10))
		delete(store.products, "P1")
		pub.movements = nil

		if err := svc.Delete(context.Background(), seller, s.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if _, ok := store.sales[s.ID]; ok {
			t.Error("venda deveria ter sido excluída")
		}
		if len(pub.movements) != 0 {
			t.Error("sem devolução não deveria haver evento")
		}
	})
}

// Excluir e recriar a mesma venda deixa o estoque como estava
func TestDeleteThenRecreateRoundTrip(t *testing.T) {
	store, svc, _, _ := setup(10)
	s, _ := svc.Create(context.Background(), seller, createInput(4, 10))
	before := store.products["P1"].Quantity

	if err := svc.Delete(context.Background(), seller, s.ID); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, err := svc.Create(context.Background(), seller, createInput(4, 10)); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got := store.products["P1"].Quantity; got != before {
		t.Errorf("estoque = %d, esperado %d", got, before)
	}
}

// Atualizar de q1 para q2 equivale a excluir q1 e criar q2
func TestUpdateEquivalentToDeleteAndCreate(t *testing.T) {
	for _, tc := range []struct{ q1, q2 int }{{3, 7}, {5, 1}, {4, 4}, {2, 10}} {
		storeA, svcA, _, _ := setup(10)
		sa, _ := svcA.Create(context.Background(), seller, createInput(tc.q1, 10))
		_, errUpdate := svcA.Update(context.Background(), seller, sa.ID, UpdateInput{
			CustomerID: "C1", Quantity: tc.q2, UnitPrice: decimal.NewFromInt(10), SaleDate: day,
		})

		storeB, svcB, _, _ := setup(10)
		sb, _ := svcB.Create(context.Background(), seller, createInput(tc.q1, 10))
		_ = svcB.Delete(context.Background(), seller, sb.ID)
		_, errCreate := svcB.Create(context.Background(), seller, createInput(tc.q2, 10))

		if (errUpdate == nil) != (errCreate == nil) {
			t.Errorf("q1=%d q2=%d: update=%v, delete+create=%v", tc.q1, tc.q2, errUpdate, errCreate)
			continue
		}
		if errUpdate == nil && storeA.products["P1"].Quantity != storeB.products["P1"].Quantity {
			t.Errorf("q1=%d q2=%d: estoque %d difere de %d", tc.q1, tc.q2,
				storeA.products["P1"].Quantity, storeB.products["P1"].Quantity)
		}
	}
}

// Nenhuma sequência de operações deixa o estoque negativo
func TestStockNeverNegative(t *testing.T) {
	store, svc, _, _ := setup(20)
	rng := rand.New(rand.NewSource(42))
	var ids []string

	for i := 0; i < 500; i++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(ids) == 0:
			s, err := svc.Create(context.Background(), seller, createInput(rng.Intn(8)+1, 10))
			if err == nil {
				ids = append(ids, s.ID)
			} else if !errors.Is(err, ErrInsufficientStock) {
				t.Fatalf("erro inesperado: %v", err)
			}
		case op == 1:
			id := ids[rng.Intn(len(ids))]
			_, err := svc.Update(context.Background(), seller, id, UpdateInput{
				CustomerID: "C1", Quantity: rng.Intn(12) + 1, UnitPrice: decimal.NewFromInt(10), SaleDate: day,
			})
			if err != nil && !errors.Is(err, ErrInsufficientStock) {
				t.Fatalf("erro inesperado: %v", err)
			}
		default:
			k := rng.Intn(len(ids))
			if err := svc.Delete(context.Background(), seller, ids[k]); err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			ids = append(ids[:k], ids[k+1:]...)
		}

		stock := store.products["P1"].Quantity
		if stock < 0 {
			t.Fatalf("estoque negativo após operação %d: %d", i, stock)
		}

		reserved := 0
		for _, s := range store.sales {
			reserved += s.Quantity
		}
		if stock+reserved != 20 {
			t.Fatalf("estoque %d + reservado %d deveria somar 20", stock, reserved)
		}
	}
}
