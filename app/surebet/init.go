package surebet

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/surebook/internal/deps"
)

const (
	RepoKey    = "surebet_repository"
	ServiceKey = "surebet_service"

	// Keys owned by the rates and ledger modules; their services
	// satisfy RateSource and LedgerPoster structurally.
	ratesServiceKey  = "rates_service"
	ledgerServiceKey = "ledger_service"
)

// Mount mounts surebet routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	surebetsGroup := r.Group("/surebets")
	surebetsGroup.POST("/quote", handler.QuoteTicket)
	surebetsGroup.POST("", handler.ConfirmTicket)
	surebetsGroup.GET("", handler.ListTickets)
	surebetsGroup.GET("/:ticket_id", handler.GetTicket)
	surebetsGroup.POST("/bets/:bet_id/settle", handler.LiquidateLeg)
}

// InitRepositories initializes and registers repositories and services
// for this module. The rates and ledger modules must be initialized
// first.
func InitRepositories(container *deps.Container) {
	config := GetDefaultConfig()

	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(
		repo,
		NewAllocationEngine(config),
		NewScenarioEngine(config),
		container.GetService(ratesServiceKey).(RateSource),
		container.GetService(ledgerServiceKey).(LedgerPoster),
		container.DB,
		config,
		container.Sanitizer,
		container.Logger,
	)
	container.RegisterService(ServiceKey, srv)
}

// createHandler creates a surebet handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	srv := container.GetService(ServiceKey).(Service)
	return NewHandler(srv)
}
