package rates

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/surebook/internal/deps"
)

const (
	RepoKey    = "rates_repository"
	ServiceKey = "rates_service"
)

// Mount mounts exchange rate routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	ratesGroup := r.Group("/rates")
	ratesGroup.GET("", handler.ListRates)
	ratesGroup.PUT("", handler.UpsertRate)
	ratesGroup.DELETE("/:currency_code", handler.DeleteRate)
}

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(repo, container.Cache, container.Logger)
	container.RegisterService(ServiceKey, srv)
}

// createHandler creates a rates handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	srv := container.GetService(ServiceKey).(Service)
	return NewHandler(srv)
}
