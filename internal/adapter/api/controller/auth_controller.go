package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/user"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/session"
)

// SessionService abre e encerra sessões
type SessionService interface {
	Login(ctx context.Context, username, password string) (*session.Session, string, error)
	Logout(ctx context.Context, token string) error
}

// UserFinder busca o cadastro do usuário autenticado
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	sessions SessionService
	users    UserFinder
	logger   logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(sessions SessionService, users UserFinder, logger logger.Logger) *AuthController {
	return &AuthController{
		sessions: sessions,
		users:    users,
		logger:   logger,
	}
}

// Login autentica um usuário e retorna um token de sessão
// @Summary Autentica um usuário
// @Description Verifica as credenciais no banco e abre uma sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Requisição inválida", err)
		return
	}

	s, token, err := c.sessions.Login(ctx.Request.Context(), request.Username, request.Password)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao autenticar usuário")
		return
	}

	c.logger.Info("login realizado", "username", s.User.Username, "session_id", s.ID)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User: dto.SessionUserResponse{
			ID:       s.User.UserID,
			Username: s.User.Username,
			TenantID: s.User.TenantID,
			IsAdmin:  s.User.IsAdmin,
		},
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt,
	})
}

// Logout encerra a sessão atual
// @Summary Encerra a sessão
// @Description Remove a sessão associada ao token; o token deixa de ser aceito
// @Tags auth
// @Security Bearer
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token := ctx.GetString(auth.ContextToken)
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Não autenticado", ""))
		return
	}

	if err := c.sessions.Logout(ctx.Request.Context(), token); err != nil {
		respondError(ctx, c.logger, err, "Erro ao encerrar sessão")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Me retorna informações do usuário atual
// @Summary Retorna informações do usuário atual
// @Description Retorna informações do usuário autenticado
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	u, err := c.users.FindByID(ctx.Request.Context(), actor.UserID)
	if err != nil {
		if StatusFor(err) == http.StatusNotFound {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Usuário não encontrado", ""))
			return
		}
		respondError(ctx, c.logger, err, "Erro ao buscar usuário")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
