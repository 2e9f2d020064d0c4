package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/productorder"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// ProductOrderController gerencia as encomendas de produtos
type ProductOrderController struct {
	repo   productorder.Repository
	logger logger.Logger
}

// NewProductOrderController cria uma nova instância de ProductOrderController
func NewProductOrderController(repo productorder.Repository, logger logger.Logger) *ProductOrderController {
	return &ProductOrderController{
		repo:   repo,
		logger: logger,
	}
}

// Create registra uma encomenda
// @Summary Criar encomenda
// @Tags product-orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ProductOrderRequest true "Dados da encomenda"
// @Success 201 {object} dto.ProductOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /product-orders [post]
func (c *ProductOrderController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.ProductOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	in, err := req.Input()
	if err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	r, err := productorder.NewRequest(in)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar encomenda")
		return
	}

	r.TenantID, err = tenant.ChooseTenantForInsert(actor, req.TenantID)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar encomenda")
		return
	}

	if err := c.repo.Create(ctx.Request.Context(), actor, r); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a encomenda")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductOrderResponse(r))
}

// Get retorna uma encomenda
// @Summary Buscar encomenda
// @Tags product-orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID da encomenda"
// @Success 200 {object} dto.ProductOrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /product-orders/{id} [get]
func (c *ProductOrderController) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	v, err := c.repo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar a encomenda")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductOrderViewResponse(v))
}

// List lista as encomendas
// @Summary Listar encomendas
// @Tags product-orders
// @Produce json
// @Security Bearer
// @Param status query string false "Filtrar por status"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.ProductOrderResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /product-orders [get]
func (c *ProductOrderController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var filter productorder.ListFilter
	if s := ctx.Query("status"); s != "" {
		status, err := productorder.ParseStatus(s)
		if err != nil {
			respondError(ctx, c.logger, err, "Filtro inválido")
			return
		}
		filter.Status = status
	}
	p := pagination(ctx)

	views, err := c.repo.List(ctx.Request.Context(), actor, filter, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar as encomendas")
		return
	}

	total, err := c.repo.Count(ctx.Request.Context(), actor, filter)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar as encomendas")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductOrderListResponse(views, total, p))
}

// Update altera uma encomenda
// @Summary Atualizar encomenda
// @Tags product-orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da encomenda"
// @Param request body dto.ProductOrderRequest true "Dados da encomenda"
// @Success 200 {object} dto.ProductOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /product-orders/{id} [put]
func (c *ProductOrderController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.ProductOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	in, err := req.Input()
	if err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	v, err := c.repo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar a encomenda")
		return
	}

	r := &v.Request
	if in.Status == "" {
		in.Status = string(r.Status)
	}
	if err := r.Apply(in); err != nil {
		respondError(ctx, c.logger, err, "Erro ao atualizar encomenda")
		return
	}

	if err := c.repo.Update(ctx.Request.Context(), actor, r); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a encomenda")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductOrderResponse(r))
}

// UpdateStatus altera apenas o status da encomenda
// @Summary Atualizar status da encomenda
// @Tags product-orders
// @Accept json
// @Security Bearer
// @Param id path string true "ID da encomenda"
// @Param status body dto.ProductOrderStatusRequest true "Novo status"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /product-orders/{id}/status [patch]
func (c *ProductOrderController) UpdateStatus(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.ProductOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "status inválido", err)
		return
	}

	status, err := productorder.ParseStatus(req.Status)
	if err != nil {
		respondError(ctx, c.logger, err, "status inválido")
		return
	}

	if err := c.repo.UpdateStatus(ctx.Request.Context(), actor, ctx.Param("id"), status); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível atualizar o status")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete exclui uma encomenda
// @Summary Excluir encomenda
// @Tags product-orders
// @Security Bearer
// @Param id path string true "ID da encomenda"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /product-orders/{id} [delete]
func (c *ProductOrderController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	if err := c.repo.Delete(ctx.Request.Context(), actor, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível excluir a encomenda")
		return
	}

	ctx.Status(http.StatusNoContent)
}
