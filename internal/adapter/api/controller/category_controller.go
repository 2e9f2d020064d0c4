package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/category"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// CategoryController gerencia as categorias de produtos
type CategoryController struct {
	categoryRepo category.Repository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo category.Repository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria
// @Summary Criar categoria
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	cat, err := category.NewCategory(req.Name)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar categoria")
		return
	}

	cat.TenantID, err = tenant.ChooseTenantForInsert(actor, req.TenantID)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar categoria")
		return
	}

	if err := c.categoryRepo.Create(ctx.Request.Context(), actor, cat); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a categoria")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

// Get retorna uma categoria pelo ID
// @Summary Buscar categoria
// @Tags categories
// @Produce json
// @Security Bearer
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	cat, err := c.categoryRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar a categoria")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// List retorna as categorias visíveis para o usuário
// @Summary Listar categorias
// @Tags categories
// @Produce json
// @Security Bearer
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.CategoryResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	p := pagination(ctx)

	categories, err := c.categoryRepo.List(ctx.Request.Context(), actor, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar as categorias")
		return
	}

	total, err := c.categoryRepo.Count(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar as categorias")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories, total, p))
}

// Update renomeia uma categoria
// @Summary Atualizar categoria
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da categoria"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	cat, err := c.categoryRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar a categoria")
		return
	}

	if err := cat.Rename(req.Name); err != nil {
		respondError(ctx, c.logger, err, "Erro ao atualizar categoria")
		return
	}

	if err := c.categoryRepo.Update(ctx.Request.Context(), actor, cat); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a categoria")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Delete exclui uma categoria sem produtos
// @Summary Excluir categoria
// @Tags categories
// @Security Bearer
// @Param id path string true "ID da categoria"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	if err := c.categoryRepo.Delete(ctx.Request.Context(), actor, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível excluir a categoria")
		return
	}

	ctx.Status(http.StatusNoContent)
}
