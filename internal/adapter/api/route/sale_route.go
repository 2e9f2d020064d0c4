package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.PUT("/:id", saleController.Update)
		sales.DELETE("/:id", saleController.Delete)
	}
}

// RegisterOrderRoutes registra as rotas de encomendas de clientes
func RegisterOrderRoutes(r *gin.RouterGroup, orderController *controller.OrderController) {
	orders := r.Group("/orders")
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET("/:id", orderController.Get)
		orders.PUT("/:id", orderController.Update)
		orders.DELETE("/:id", orderController.Delete)
	}
}

// RegisterProductOrderRoutes registra as rotas de pedidos de produto
func RegisterProductOrderRoutes(r *gin.RouterGroup, productOrderController *controller.ProductOrderController) {
	requests := r.Group("/product-orders")
	{
		requests.POST("", productOrderController.Create)
		requests.GET("", productOrderController.List)
		requests.GET("/:id", productOrderController.Get)
		requests.PUT("/:id", productOrderController.Update)
		requests.PATCH("/:id/status", productOrderController.UpdateStatus)
		requests.DELETE("/:id", productOrderController.Delete)
	}
}
