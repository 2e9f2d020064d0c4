package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// StatusFor traduz a categoria de um erro do domínio no status HTTP
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.ErrValidation:
		return http.StatusBadRequest
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrUnauthenticated:
		return http.StatusUnauthorized
	case domain.ErrUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError registra o erro e responde no formato de dto.ErrorResponse.
// Erros sem categoria viram 500 com a mensagem genérica informada.
func respondError(ctx *gin.Context, log logger.Logger, err error, message string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(message, "error", err, "path", ctx.FullPath())
		ctx.JSON(status, dto.NewErrorResponse(status, message, err.Error()))
		return
	}

	log.Warn(message, "error", err, "status", status, "path", ctx.FullPath())
	ctx.JSON(status, dto.NewErrorResponse(status, err.Error(), ""))
}

// badRequest responde 400 para corpo ou parâmetros inválidos
func badRequest(ctx *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, details))
}

// currentActor obtém o ator autenticado ou responde 401
func currentActor(ctx *gin.Context) (tenant.Actor, bool) {
	actor, ok := auth.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return tenant.Actor{}, false
	}
	return actor, true
}

// pagination lê page e page_size da query string
func pagination(ctx *gin.Context) dto.Pagination {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	return dto.GetPagination(page, size)
}
