package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
)

// SetupUserRoutes configura as rotas para o módulo de usuários.
// router já deve exigir autenticação.
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	userRouter := router.Group("/users")
	userRouter.Use(auth.AdminMiddleware())
	{
		userRouter.POST("", userController.Create)
		userRouter.GET("", userController.List)
		userRouter.GET("/:id", userController.GetByID)
		userRouter.PUT("/:id", userController.Update)
		userRouter.DELETE("/:id", userController.Delete)
		userRouter.PUT("/:id/password", userController.ChangePassword)
	}
}
