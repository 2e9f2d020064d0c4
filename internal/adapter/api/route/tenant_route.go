package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
)

// SetupTenantRoutes configura as rotas de lojas; apenas administradores
func SetupTenantRoutes(router *gin.RouterGroup, tenantController *controller.TenantController) {
	tenantRouter := router.Group("/tenants")
	tenantRouter.Use(auth.AdminMiddleware())
	{
		tenantRouter.POST("", tenantController.Create)
		tenantRouter.GET("", tenantController.List)
		tenantRouter.GET("/:id", tenantController.GetByID)
		tenantRouter.PUT("/:id", tenantController.Update)
		tenantRouter.DELETE("/:id", tenantController.Delete)
	}
}
