package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	customerdomain "github.com/hugohenrick/gestao-varejo/internal/domain/customer"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no tenant do usuário
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	customer, err := customerdomain.NewCustomer(req.Contact())
	if err != nil {
		respondError(ctx, c.logger, err, "erro ao criar cliente")
		return
	}

	customer.TenantID, err = tenant.ChooseTenantForInsert(actor, req.TenantID)
	if err != nil {
		respondError(ctx, c.logger, err, "erro ao criar cliente")
		return
	}

	if err := c.customerRepo.Create(ctx.Request.Context(), actor, customer); err != nil {
		respondError(ctx, c.logger, err, "erro ao salvar cliente")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags customers
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	customer, err := c.customerRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "erro ao buscar cliente")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Retorna a lista de clientes paginada
// @Tags customers
// @Produce json
// @Security Bearer
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.CustomerResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	p := pagination(ctx)

	customers, err := c.customerRepo.List(ctx.Request.Context(), actor, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "erro ao listar clientes")
		return
	}

	total, err := c.customerRepo.Count(ctx.Request.Context(), actor)
	if err != nil {
		respondError(ctx, c.logger, err, "erro ao contar clientes")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, total, p))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Atualiza os dados de um cliente
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	customer, err := c.customerRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "erro ao buscar cliente")
		return
	}

	if err := customer.Update(req.Contact()); err != nil {
		respondError(ctx, c.logger, err, "erro ao atualizar dados do cliente")
		return
	}

	if err := c.customerRepo.Update(ctx.Request.Context(), actor, customer); err != nil {
		respondError(ctx, c.logger, err, "erro ao atualizar cliente")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Delete exclui um cliente
// @Summary Excluir cliente
// @Description Exclui um cliente sem vendas ou pedidos vinculados
// @Tags customers
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	if err := c.customerRepo.Delete(ctx.Request.Context(), actor, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err, "erro ao excluir cliente")
		return
	}

	ctx.Status(http.StatusNoContent)
}
