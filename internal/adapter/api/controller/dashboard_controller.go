package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestao-varejo/internal/domain/expense"
	"github.com/hugohenrick/gestao-varejo/internal/domain/product"
	"github.com/hugohenrick/gestao-varejo/internal/domain/report"
	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// DBTracker mede a duração das consultas do painel
type DBTracker interface {
	TrackDBOperation(operationType string) func()
}

// DashboardController monta o resumo do painel
type DashboardController struct {
	productRepo product.Repository
	saleRepo    sale.Repository
	expenseRepo expense.Repository
	tracker     DBTracker
	logger      logger.Logger
	now         func() time.Time
}

// NewDashboardController cria uma nova instância de DashboardController; tracker pode ser nil
func NewDashboardController(productRepo product.Repository, saleRepo sale.Repository, expenseRepo expense.Repository, tracker DBTracker, logger logger.Logger) *DashboardController {
	return &DashboardController{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		tracker:     tracker,
		logger:      logger,
		now:         time.Now,
	}
}

// Summary retorna faturamento, saldo de caixa, valor do estoque e rankings
// @Summary Resumo do painel
// @Description Saldo considera vendas pagas e movimentações de caixa a partir de hoje menos days
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Param days query int false "Janela em dias (padrão 30)"
// @Param top query int false "Tamanho dos rankings (padrão 5)"
// @Param low_stock query int false "Limite de estoque baixo (padrão 5)"
// @Success 200 {object} report.Summary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) Summary(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	days := queryInt(ctx, "days", 30)
	opts := report.Options{
		Since:         startOfDay(c.now()).AddDate(0, 0, -days),
		TopN:          queryInt(ctx, "top", 5),
		LowStockLimit: queryInt(ctx, "low_stock", 5),
	}

	var (
		products []*product.Product
		sales    []*sale.View
		expenses []*expense.Expense
	)

	g, gctx := errgroup.WithContext(ctx.Request.Context())
	g.Go(func() error {
		defer c.track("dashboard_products")()
		var err error
		products, err = c.productRepo.List(gctx, actor, product.ListFilter{}, 0, 0)
		return err
	})
	g.Go(func() error {
		defer c.track("dashboard_sales")()
		var err error
		sales, err = c.saleRepo.List(gctx, actor, sale.ListFilter{}, 0, 0)
		return err
	})
	g.Go(func() error {
		defer c.track("dashboard_expenses")()
		var err error
		expenses, err = c.expenseRepo.List(gctx, actor, expense.ListFilter{}, 0, 0)
		return err
	})

	if err := g.Wait(); err != nil {
		respondError(ctx, c.logger, err, "Não foi possível carregar o painel")
		return
	}

	ctx.JSON(http.StatusOK, report.BuildSummary(products, sales, expenses, opts))
}

func (c *DashboardController) track(op string) func() {
	if c.tracker == nil {
		return func() {}
	}
	return c.tracker.TrackDBOperation(op)
}

func queryInt(ctx *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(ctx.Query(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
