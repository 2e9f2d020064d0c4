package sale

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/customer"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	pkgtenant "github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Service aplica as regras de estoque ao ciclo de vida das vendas.
// A venda e o ajuste de estoque são gravados na mesma transação.
type Service struct {
	uow       UnitOfWork
	publisher Publisher
	recorder  Recorder
	logger    logger.Logger
}

// NewService cria o serviço de vendas; publisher e recorder são opcionais
func NewService(uow UnitOfWork, publisher Publisher, recorder Recorder, log logger.Logger) *Service {
	return &Service{
		uow:       uow,
		publisher: publisher,
		recorder:  recorder,
		logger:    log,
	}
}

// Create registra uma venda e baixa o estoque do produto
func (s *Service) Create(ctx context.Context, actor pkgtenant.Actor, in CreateInput) (*Sale, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tenantID, err := pkgtenant.TenantIDForInsert(actor)
	if err != nil {
		return nil, err
	}

	var created *Sale
	err = s.uow.Within(ctx, actor, func(tx Tx) error {
		if err := ensureCustomer(ctx, tx, in.CustomerID); err != nil {
			return err
		}

		p, err := tx.FindProduct(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if in.Quantity > p.Quantity {
			return ErrInsufficientStock
		}

		ok, err := tx.AdjustStock(ctx, p.ID, -in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientStock
		}

		// Venda criada por administrador herda o tenant do produto
		if tenantID == nil {
			tenantID = p.TenantID
		}

		created = newSale(in, tenantID)
		if err := tx.InsertSale(ctx, created); err != nil {
			return err
		}

		if !in.UnitPrice.Equal(p.SalePrice) {
			return tx.SetSalePrice(ctx, p.ID, in.UnitPrice)
		}
		return nil
	})
	s.record("create", err)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, actor, Movement{
		SaleID:    created.ID,
		ProductID: in.ProductID,
		TenantID:  created.TenantID,
		Delta:     -in.Quantity,
		Reason:    ReasonCreated,
	})
	return created, nil
}

// Update altera uma venda devolvendo a quantidade antiga antes de reservar a nova
func (s *Service) Update(ctx context.Context, actor pkgtenant.Actor, id string, in UpdateInput) (*Sale, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *Sale
		delta   int
	)
	err := s.uow.Within(ctx, actor, func(tx Tx) error {
		existing, err := tx.FindSale(ctx, id)
		if err != nil {
			return err
		}
		if in.CustomerID != existing.CustomerID {
			if err := ensureCustomer(ctx, tx, in.CustomerID); err != nil {
				return err
			}
		}

		// Produto excluído: a venda é editada sem movimentar estoque
		if existing.ProductID == nil {
			existing.apply(in)
			updated = existing
			return tx.UpdateSale(ctx, existing)
		}

		p, err := tx.FindProduct(ctx, *existing.ProductID)
		if err != nil {
			return err
		}

		available := p.Quantity + existing.Quantity
		if in.Quantity > available {
			return ErrInsufficientStock
		}

		delta = existing.Quantity - in.Quantity
		if delta != 0 {
			ok, err := tx.AdjustStock(ctx, p.ID, delta)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}
		}

		existing.apply(in)
		updated = existing
		if err := tx.UpdateSale(ctx, existing); err != nil {
			return err
		}

		if !in.UnitPrice.Equal(p.SalePrice) {
			return tx.SetSalePrice(ctx, p.ID, in.UnitPrice)
		}
		return nil
	})
	s.record("update", err)
	if err != nil {
		return nil, err
	}

	if delta != 0 && updated.ProductID != nil {
		s.publish(ctx, actor, Movement{
			SaleID:    updated.ID,
			ProductID: *updated.ProductID,
			TenantID:  updated.TenantID,
			Delta:     delta,
			Reason:    ReasonUpdated,
		})
	}
	return updated, nil
}

// Delete remove a venda e devolve a quantidade ao estoque.
// Se o produto não existir mais a devolução é ignorada.
func (s *Service) Delete(ctx context.Context, actor pkgtenant.Actor, id string) error {
	var (
		deleted  *Sale
		restored bool
	)
	err := s.uow.Within(ctx, actor, func(tx Tx) error {
		existing, err := tx.FindSale(ctx, id)
		if err != nil {
			return err
		}
		deleted = existing

		if existing.ProductID != nil {
			restored, err = tx.AdjustStock(ctx, *existing.ProductID, existing.Quantity)
			if err != nil {
				return err
			}
			if !restored {
				s.logger.Warn("produto da venda não encontrado, estoque não devolvido",
					"sale_id", existing.ID, "product_id", *existing.ProductID)
			}
		}

		return tx.DeleteSale(ctx, existing.ID)
	})
	s.record("delete", err)
	if err != nil {
		return err
	}

	if restored {
		s.publish(ctx, actor, Movement{
			SaleID:    deleted.ID,
			ProductID: *deleted.ProductID,
			TenantID:  deleted.TenantID,
			Delta:     deleted.Quantity,
			Reason:    ReasonDeleted,
		})
	}
	return nil
}

func ensureCustomer(ctx context.Context, tx Tx, id string) error {
	ok, err := tx.CustomerExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func (s *Service) record(operation string, err error) {
	if s.recorder == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, ErrInsufficientStock):
		outcome = "insufficient_stock"
	case err != nil:
		outcome = "error"
	}
	s.recorder.SaleOperation(operation, outcome)
}

// publish é executado após o commit; falhas são apenas registradas
func (s *Service) publish(ctx context.Context, actor pkgtenant.Actor, m Movement) {
	if s.publisher == nil {
		return
	}
	m.Username = actor.Username
	m.OccurredAt = time.Now()
	if err := s.publisher.Publish(ctx, m.ProductID, m); err != nil {
		s.logger.Warn("falha ao publicar movimentação de estoque", "product_id", m.ProductID, "error", err)
	}
}
