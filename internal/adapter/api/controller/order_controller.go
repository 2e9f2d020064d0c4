package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/order"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// OrderController gerencia os pedidos de compra
type OrderController struct {
	orderRepo order.Repository
	logger    logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orderRepo order.Repository, logger logger.Logger) *OrderController {
	return &OrderController{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create cria um pedido com seus itens
// @Summary Criar pedido
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param order body dto.OrderRequest true "Pedido e itens"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	in, err := req.Input()
	if err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	o, err := order.NewOrder(in)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar pedido")
		return
	}

	o.TenantID, err = tenant.ChooseTenantForInsert(actor, req.TenantID)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar pedido")
		return
	}

	if err := c.orderRepo.Create(ctx.Request.Context(), actor, o); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o pedido")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// Get retorna um pedido com os itens
// @Summary Buscar pedido
// @Tags orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	v, err := c.orderRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o pedido")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderViewResponse(v))
}

// List lista os pedidos
// @Summary Listar pedidos
// @Tags orders
// @Produce json
// @Security Bearer
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.OrderResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	p := pagination(ctx)

	views, err := c.orderRepo.List(ctx.Request.Context(), actor, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar os pedidos")
		return
	}

	total, err := c.orderRepo.Count(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar os pedidos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(views, total, p))
}

// Update substitui o cabeçalho e todos os itens do pedido
// @Summary Atualizar pedido
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Param order body dto.OrderRequest true "Pedido e itens"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [put]
func (c *OrderController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	in, err := req.Input()
	if err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	v, err := c.orderRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o pedido")
		return
	}

	o := &v.Order
	if err := o.Replace(in); err != nil {
		respondError(ctx, c.logger, err, "Erro ao atualizar pedido")
		return
	}

	if err := c.orderRepo.Update(ctx.Request.Context(), actor, o); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o pedido")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Delete exclui o pedido e seus itens
// @Summary Excluir pedido
// @Tags orders
// @Security Bearer
// @Param id path string true "ID do pedido"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [delete]
func (c *OrderController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	if err := c.orderRepo.Delete(ctx.Request.Context(), actor, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível excluir o pedido")
		return
	}

	ctx.Status(http.StatusNoContent)
}
