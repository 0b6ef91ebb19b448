package bookmakers

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/surebook/internal/deps"
)

const (
	RepoKey    = "bookmakers_repository"
	ServiceKey = "bookmakers_service"
)

// Mount mounts partner and bookmaker routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	partnersGroup := r.Group("/partners")
	partnersGroup.POST("", handler.CreatePartner)
	partnersGroup.GET("", handler.GetPartners)
	partnersGroup.PATCH("/:id", handler.UpdatePartner)

	bookmakersGroup := r.Group("/bookmakers")
	bookmakersGroup.POST("", handler.CreateBookmaker)
	bookmakersGroup.GET("", handler.GetBookmakers)
	bookmakersGroup.GET("/:id", handler.GetBookmaker)
	bookmakersGroup.PATCH("/:id", handler.UpdateBookmaker)
}

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, repo)

	srv := NewService(repo, container.Sanitizer, container.Logger)
	container.RegisterService(ServiceKey, srv)
}

// createHandler creates a bookmakers handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	srv := container.GetService(ServiceKey).(Service)
	return NewHandler(srv)
}
