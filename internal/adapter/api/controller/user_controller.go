package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/internal/domain/user"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	userRepository user.Repository
	logger         logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userRepository user.Repository, logger logger.Logger) *UserController {
	return &UserController{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create cria um novo usuário
// @Summary Criar usuário
// @Description Cria um usuário autorizado. Usuários comuns precisam de tenant.
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	u, err := user.NewUser(req.Username, req.Password, req.TenantID, req.IsAdmin)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar usuário")
		return
	}

	if err := c.userRepository.Create(ctx.Request.Context(), actor, u); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o usuário")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// CreateAdminUser cria o primeiro administrador do sistema.
// Só funciona enquanto nenhum administrador existir.
// @Summary Criar administrador inicial
// @Tags setup
// @Accept json
// @Produce json
// @Param user body dto.SetupAdminRequest true "Credenciais do administrador"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /setup/admin [post]
func (c *UserController) CreateAdminUser(ctx *gin.Context) {
	var req dto.SetupAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	admins, err := c.userRepository.CountAdmins(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível verificar administradores")
		return
	}
	if admins > 0 {
		respondError(ctx, c.logger, user.ErrAdminExists, "Administrador já existe")
		return
	}

	u, err := user.NewUser(req.Username, req.Password, nil, true)
	if err != nil {
		respondError(ctx, c.logger, err, "Erro ao criar administrador")
		return
	}

	// O próprio administrador aparece como autor no log de auditoria
	actor := tenant.Actor{UserID: u.ID, Username: u.Username, IsAdmin: true}
	if err := c.userRepository.Create(ctx.Request.Context(), actor, u); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o administrador")
		return
	}

	c.logger.Info("administrador inicial criado", "username", u.Username)
	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// GetByID busca um usuário pelo ID
// @Summary Buscar usuário
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	u, err := c.userRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o usuário")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// List lista os usuários
// @Summary Listar usuários
// @Tags users
// @Produce json
// @Security Bearer
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse[dto.UserResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	p := pagination(ctx)

	users, err := c.userRepository.List(ctx.Request.Context(), p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar os usuários")
		return
	}

	total, err := c.userRepository.Count(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível contar os usuários")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users, total, p))
}

// Update altera nome, tenant e papel de um usuário
// @Summary Atualizar usuário
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do usuário"
// @Param user body dto.UserUpdateRequest true "Dados do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	u, err := c.userRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o usuário")
		return
	}

	u.Username = strings.TrimSpace(req.Username)
	if err := u.Assign(req.TenantID, req.IsAdmin); err != nil {
		respondError(ctx, c.logger, err, "Erro ao atualizar usuário")
		return
	}

	if err := c.userRepository.Update(ctx.Request.Context(), actor, u); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar o usuário")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// ChangePassword define uma nova senha para o usuário
// @Summary Alterar senha
// @Tags users
// @Accept json
// @Security Bearer
// @Param id path string true "ID do usuário"
// @Param password body dto.ChangePasswordRequest true "Nova senha"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	u, err := c.userRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o usuário")
		return
	}

	if err := u.SetPassword(req.NewPassword); err != nil {
		respondError(ctx, c.logger, err, "Erro ao alterar senha")
		return
	}

	if err := c.userRepository.UpdatePassword(ctx.Request.Context(), actor, u.ID, u.PasswordHash); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível salvar a senha")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete remove um usuário; o usuário autenticado não pode excluir a si mesmo
// @Summary Excluir usuário
// @Tags users
// @Security Bearer
// @Param id path string true "ID do usuário"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	id := ctx.Param("id")
	if err := user.CheckDeletion(actor.UserID, id); err != nil {
		respondError(ctx, c.logger, err, "Exclusão não permitida")
		return
	}

	if err := c.userRepository.Delete(ctx.Request.Context(), actor, id); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível excluir o usuário")
		return
	}

	ctx.Status(http.StatusNoContent)
}
