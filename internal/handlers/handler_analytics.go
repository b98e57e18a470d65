package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/explainmymoney/emm_backend/internal/core/ports/services"
	"github.com/explainmymoney/emm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler serves the aggregation endpoints backing the dashboard.
type analyticsHandler struct {
	txnService portssvc.TransactionSvcFacade
}

func newAnalyticsHandler(ts portssvc.TransactionSvcFacade) *analyticsHandler {
	return &analyticsHandler{txnService: ts}
}

// registerAnalyticsRoutes registers the analytics routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := newAnalyticsHandler(txnService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/categories", h.categoryAnalytics)
		analytics.GET("/investments", h.investmentAnalytics)
	}
}

// categoryAnalytics godoc
// @Summary Spend by category
// @Description Aggregates debit spend per category with percentage shares.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.CategoryAnalyticsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/categories [get]
func (h *analyticsHandler) categoryAnalytics(c *gin.Context) {
	resp, err := h.txnService.CategoryAnalytics(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute category analytics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// investmentAnalytics godoc
// @Summary Investment breakdown
// @Description Aggregates investment totals per subtype with the underlying transactions.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.InvestmentAnalyticsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/investments [get]
func (h *analyticsHandler) investmentAnalytics(c *gin.Context) {
	resp, err := h.txnService.InvestmentAnalytics(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute investment analytics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
