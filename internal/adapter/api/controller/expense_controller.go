package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/expense"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// ExpenseController gerencia despesas e entradas de caixa
type ExpenseController struct {
	expenseRepo expense.Repository
	logger      logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenseRepo expense.Repository, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create registra uma despesa ou entrada de caixa
// @Summary Criar despesa
// @Description A direção é derivada da categoria: Entrada de Caixa soma ao saldo, as demais subtraem
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	in, err := req.Input()
	if err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	e, err := expense.NewExpense(in)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar despesa")
		return
	}

	e.TenantID, err = tenant.ChooseTenantForInsert(actor, req.TenantID)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar despesa")
		return
	}

	if err := c.expenseRepo.Create(ctx.Request.Context(), actor, e); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a despesa")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(e))
}

// Get retorna uma despesa
// @Summary Buscar despesa
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [get]
func (c *ExpenseController) Get(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	e, err := c.expenseRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar a despesa")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// List lista as despesas
// @Summary Listar despesas
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Param category query string false "Filtrar por categoria"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.ExpenseResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
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

	filter := expense.ListFilter{From: from, To: to}
	if s := ctx.Query("category"); s != "" {
		category, err := expense.ParseCategory(s)
		if err != nil {
			respondError(ctx, c.logger, err, "Filtro inválido")
			return
		}
		filter.Category = category
	}
	p := pagination(ctx)

	expenses, err := c.expenseRepo.List(ctx.Request.Context(), actor, filter, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar as despesas")
		return
	}

	total, err := c.expenseRepo.Count(ctx.Request.Context(), actor, filter)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar as despesas")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses, total, p))
}

// Update altera uma despesa
// @Summary Atualizar despesa
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [put]
func (c *ExpenseController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	in, err := req.Input()
	if err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	e, err := c.expenseRepo.FindByID(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar a despesa")
		return
	}

	if err := e.Apply(in); err != nil {
		respondError(ctx, c.logger, err, "Erro ao atualizar despesa")
		return
	}

	if err := c.expenseRepo.Update(ctx.Request.Context(), actor, e); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a despesa")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// Delete exclui uma despesa
// @Summary Excluir despesa
// @Tags expenses
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	if err := c.expenseRepo.Delete(ctx.Request.Context(), actor, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível excluir a despesa")
		return
	}

	ctx.Status(http.StatusNoContent)
}
