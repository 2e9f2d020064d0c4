package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// SaleService aplica as regras de estoque às escritas de vendas
type SaleService interface {
	Create(ctx context.Context, actor tenant.Actor, in sale.CreateInput) (*sale.Sale, error)
	Update(ctx context.Context, actor tenant.Actor, id string, in sale.UpdateInput) (*sale.Sale, error)
	Delete(ctx context.Context, actor tenant.Actor, id string) error
}

// SaleController gerencia as requisições de vendas
type SaleController struct {
	service  SaleService
	saleRepo sale.Repository
	logger   logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(service SaleService, saleRepo sale.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		service:  service,
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// Create registra uma venda e baixa o estoque
// @Summary Registrar venda
// @Description A quantidade é retirada do estoque do produto. Se o preço unitário diferir do catálogo, o catálogo é atualizado.
// @Tags sales
// @Accept json
// @Produce json
// @Security Bearer
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Estoque insuficiente"
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	in, err := req.Input()
	if err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	s, err := c.service.Create(ctx.Request.Context(), actor, in)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a venda")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// Get retorna uma venda com nomes de produto e cliente
// @Summary Buscar venda
// @Tags sales
// @Produce json
// @Security Bearer
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	v, err := c.saleRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar a venda")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleViewResponse(v))
}

// List lista as vendas
// @Summary Listar vendas
// @Tags sales
// @Produce json
// @Security Bearer
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Param customer_id query string false "Filtrar por cliente"
// @Param product_id query string false "Filtrar por produto"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.SaleResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	from, err := dto.ParseOptionalDate(ctx.Query("from"))
	if err != nil {
		badRequest(ctx, "Filtro inválido", err)
		return
	}
	to, err := dto.ParseOptionalDate(ctx.Query("to"))
	if err != nil {
		badRequest(ctx, "Filtro inválido", err)
		return
	}

	filter := sale.ListFilter{
		From:       from,
		To:         to,
		CustomerID: ctx.Query("customer_id"),
		ProductID:  ctx.Query("product_id"),
	}
	p := pagination(ctx)

	views, err := c.saleRepo.List(ctx.Request.Context(), actor, filter, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar as vendas")
		return
	}

	total, err := c.saleRepo.Count(ctx.Request.Context(), actor, filter)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar as vendas")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(views, total, p))
}

// Update altera uma venda ajustando o estoque pela diferença de quantidade
// @Summary Atualizar venda
// @Tags sales
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da venda"
// @Param sale body dto.SaleUpdateRequest true "Dados da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Estoque insuficiente"
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.SaleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	in, err := req.Input()
	if err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	s, err := c.service.Update(ctx.Request.Context(), actor, ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a venda")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Delete exclui uma venda devolvendo a quantidade ao estoque
// @Summary Excluir venda
// @Tags sales
// @Security Bearer
// @Param id path string true "ID da venda"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), actor, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível excluir a venda")
		return
	}

	ctx.Status(http.StatusNoContent)
}
