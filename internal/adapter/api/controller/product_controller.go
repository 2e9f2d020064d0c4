package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// ProductController gerencia o catálogo de produtos
type ProductController struct {
	productRepo product.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo product.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	p, err := product.NewProduct(req.Details())
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar produto")
		return
	}

	p.TenantID, err = tenant.ChooseTenantForInsert(actor, req.TenantID)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar produto")
		return
	}

	if err := c.productRepo.Create(ctx.Request.Context(), actor, p); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o produto")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Tags products
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	p, err := c.productRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista os produtos
// @Summary Listar produtos
// @Description catalog=stock exclui produtos sob encomenda; catalog=order lista apenas eles
// @Tags products
// @Produce json
// @Security Bearer
// @Param catalog query string false "stock ou order"
// @Param category_id query string false "Filtrar por categoria"
// @Param name query string false "Parte do nome"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.ProductResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	catalog, err := product.ParseCatalog(ctx.Query("catalog"))
	if err != nil {
		respondError(ctx, c.logger, err, "Filtro inválido")
		return
	}

	filter := product.ListFilter{
		Catalog:    catalog,
		CategoryID: ctx.Query("category_id"),
		Name:       ctx.Query("name"),
	}
	p := pagination(ctx)

	products, err := c.productRepo.List(ctx.Request.Context(), actor, filter, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar os produtos")
		return
	}

	total, err := c.productRepo.Count(ctx.Request.Context(), actor, filter)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar os produtos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p))
}

// Update altera um produto se a versão informada ainda for a atual
// @Summary Atualizar produto
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto com a versão lida"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	if req.Version <= 0 {
		respondError(ctx, c.logger, product.ErrMissingVersion, "Dados inválidos")
		return
	}

	p, err := c.productRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o produto")
		return
	}

	if err := p.Apply(req.Details()); err != nil {
		respondError(ctx, c.logger, err, "Erro ao atualizar produto")
		return
	}
	p.Version = req.Version

	if err := c.productRepo.Update(ctx.Request.Context(), actor, p); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete exclui um produto. Vendas antigas mantêm o registro sem o produto.
// @Summary Excluir produto
// @Tags products
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	if err := c.productRepo.Delete(ctx.Request.Context(), actor, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível excluir o produto")
		return
	}

	ctx.Status(http.StatusNoContent)
}
