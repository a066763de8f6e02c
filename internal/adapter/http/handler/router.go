package handler

import (
	"mercato-core/internal/adapter/http/middleware"
	"mercato-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LotterySvc     ports.LotteryService
	IssuanceSvc    ports.IssuanceService
	LedgerSvc      ports.LedgerService
	DrawingSvc     ports.DrawingService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")

	lotteryHandler := NewLotteryHandler(deps.LotterySvc, deps.DrawingSvc)
	ticketHandler := NewTicketHandler(deps.IssuanceSvc)
	lotteries := v1.Group("/lotteries")
	{
		lotteries.POST("", lotteryHandler.Create)
		lotteries.GET("", lotteryHandler.List)
		lotteries.GET("/:id", lotteryHandler.Get)
		lotteries.POST("/:id/activate", lotteryHandler.Activate)
		lotteries.POST("/:id/close", lotteryHandler.Close)
		lotteries.POST("/:id/cancel", lotteryHandler.Cancel)
		lotteries.POST("/:id/draw", lotteryHandler.Draw)
		lotteries.GET("/:id/drawing", lotteryHandler.GetDrawing)
		lotteries.POST("/:id/tickets", ticketHandler.Purchase)
	}

	v1.GET("/buyers/:id/tickets", ticketHandler.ListByBuyer)

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	v1.POST("/payments/webhook", ledgerHandler.Webhook)
	transactions := v1.Group("/transactions")
	{
		transactions.POST("/:id/complete", ledgerHandler.Complete)
		transactions.POST("/:id/fail", ledgerHandler.Fail)
		transactions.POST("/:id/refund", ledgerHandler.Refund)
	}

	return r
}
