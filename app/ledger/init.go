package ledger

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/surebook/internal/deps"
)

const (
	RepoKey    = "ledger_repository"
	ServiceKey = "ledger_service"
)

// Mount mounts ledger routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	transactionsGroup := r.Group("/transactions")
	transactionsGroup.GET("", handler.ListTransactions)
	transactionsGroup.POST("/adjustments", handler.CreateAdjustment)
}

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(repo, container.DB, container.Logger)
	container.RegisterService(ServiceKey, srv)
}

// createHandler creates a ledger handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	srv := container.GetService(ServiceKey).(Service)
	return NewHandler(srv)
}
