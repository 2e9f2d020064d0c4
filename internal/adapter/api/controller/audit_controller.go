package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/audit"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
)

// AuditController expõe o log de auditoria para administradores
type AuditController struct {
	auditRepo audit.Repository
	logger    logger.Logger
}

// NewAuditController cria uma nova instância de AuditController
func NewAuditController(auditRepo audit.Repository, logger logger.Logger) *AuditController {
	return &AuditController{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// List lista as alterações registradas, das mais recentes para as mais antigas
// @Summary Listar log de auditoria
// @Tags audit
// @Produce json
// @Security Bearer
// @Param table query string false "Tabela alterada"
// @Param operation query string false "INSERT, UPDATE ou DELETE"
// @Param username query string false "Usuário que fez a alteração"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.AuditEntryResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /audit-logs [get]
func (c *AuditController) List(ctx *gin.Context) {
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

	filter := audit.Filter{
		Table:    ctx.Query("table"),
		Username: ctx.Query("username"),
		From:     from,
		To:       to,
	}
	if s := ctx.Query("operation"); s != "" {
		op, err := audit.ParseOperation(s)
		if err != nil {
			respondError(ctx, c.logger, err, "Filtro inválido")
			return
		}
		filter.Operation = op
	}
	p := pagination(ctx)

	entries, err := c.auditRepo.List(ctx.Request.Context(), actor, filter, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o log de auditoria")
		return
	}

	total, err := c.auditRepo.Count(ctx.Request.Context(), actor, filter)
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar o log de auditoria")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuditListResponse(entries, total, p))
}
