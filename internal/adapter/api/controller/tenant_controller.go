package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/tenant"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
)

// TenantController gerencia as requisições relacionadas a tenants
type TenantController struct {
	tenantRepository tenant.Repository
	logger           logger.Logger
}

// NewTenantController cria uma nova instância de TenantController
func NewTenantController(tenantRepository tenant.Repository, logger logger.Logger) *TenantController {
	return &TenantController{
		tenantRepository: tenantRepository,
		logger:           logger,
	}
}

// Create cria um novo tenant
// @Summary Criar tenant
// @Description Cria uma nova loja. Restrito a administradores.
// @Tags tenants
// @Accept json
// @Produce json
// @Security Bearer
// @Param tenant body dto.TenantRequest true "Dados do tenant"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants [post]
func (c *TenantController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.TenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	t, err := tenant.NewTenant(req.Name)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar tenant")
		return
	}

	if err := c.tenantRepository.Create(ctx.Request.Context(), actor, t); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o tenant")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTenantResponse(t))
}

// GetByID busca um tenant pelo ID
// @Summary Buscar tenant
// @Tags tenants
// @Produce json
// @Security Bearer
// @Param id path string true "ID do tenant"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id} [get]
func (c *TenantController) GetByID(ctx *gin.Context) {
	t, err := c.tenantRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o tenant")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// List lista os tenants com paginação
// @Summary Listar tenants
// @Tags tenants
// @Produce json
// @Security Bearer
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.TenantResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants [get]
func (c *TenantController) List(ctx *gin.Context) {
	p := pagination(ctx)

	tenants, err := c.tenantRepository.List(ctx.Request.Context(), p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar os tenants")
		return
	}

	total, err := c.tenantRepository.Count(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar os tenants")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantListResponse(tenants, total, p))
}

// Update renomeia um tenant
// @Summary Atualizar tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do tenant"
// @Param tenant body dto.TenantRequest true "Dados do tenant"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id} [put]
func (c *TenantController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.TenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	t, err := c.tenantRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o tenant")
		return
	}

	if err := t.Rename(req.Name); err != nil {
		respondError(ctx, c.logger, err, "Erro ao atualizar tenant")
		return
	}

	if err := c.tenantRepository.Update(ctx.Request.Context(), actor, t); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o tenant")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// Delete remove um tenant sem usuários vinculados
// @Summary Excluir tenant
// @Tags tenants
// @Security Bearer
// @Param id path string true "ID do tenant"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id} [delete]
func (c *TenantController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	if err := c.tenantRepository.Delete(ctx.Request.Context(), actor, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível excluir o tenant")
		return
	}

	ctx.Status(http.StatusNoContent)
}
