package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
)

// RegisterExpenseRoutes registra as rotas de despesas e entradas de caixa
func RegisterExpenseRoutes(r *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenses := r.Group("/expenses")
	{
		expenses.POST("", expenseController.Create)
		expenses.GET("", expenseController.List)
		expenses.GET("/:id", expenseController.Get)
		expenses.PUT("/:id", expenseController.Update)
		expenses.DELETE("/:id", expenseController.Delete)
	}
}

// RegisterDashboardRoutes registra o resumo do painel
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController) {
	r.GET("/dashboard", dashboardController.Summary)
}

// RegisterAuditRoutes registra a consulta ao log de auditoria
func RegisterAuditRoutes(r *gin.RouterGroup, auditController *controller.AuditController) {
	r.GET("/audit-logs", auth.AdminMiddleware(), auditController.List)
}
