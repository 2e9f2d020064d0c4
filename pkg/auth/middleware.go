package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
)

// Chaves gravadas no contexto do gin
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextIsAdmin  = "is_admin"
	ContextToken    = "token"
)

// SessionResolver converte um token de acesso no ator da sessão
type SessionResolver interface {
	ResolveActor(ctx context.Context, token string) (tenant.Actor, error)
}

// BearerToken extrai o token do cabeçalho Authorization
func BearerToken(c *gin.Context) (string, bool) {
	tokenParts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", false
	}
	return tokenParts[1], true
}

// JWTAuthMiddleware valida a sessão e grava o ator no contexto da requisição
func JWTAuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho Authorization não foi fornecido",
			))
			return
		}

		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use o formato 'Bearer <token>'",
			))
			return
		}

		actor, err := resolver.ResolveActor(c.Request.Context(), token)
		if err != nil {
			message := "Sessão inválida"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		c.Set(ContextUserID, actor.UserID)
		c.Set(ContextUsername, actor.Username)
		c.Set(ContextIsAdmin, actor.IsAdmin)
		c.Set(ContextToken, token)
		c.Request = c.Request.WithContext(tenant.WithActor(c.Request.Context(), actor))

		c.Next()
	}
}

// AdminMiddleware restringe a rota a administradores
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := tenant.ActorFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		if err := tenant.RequireAdmin(actor); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Acesso negado",
				err.Error(),
			))
			return
		}

		c.Next()
	}
}

// CurrentActor obtém o ator autenticado da requisição
func CurrentActor(c *gin.Context) (tenant.Actor, bool) {
	return tenant.ActorFromContext(c.Request.Context())
}
