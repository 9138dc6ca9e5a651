package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-registry/internal/config"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/handlers"
	"github.com/BruksfildServices01/client-registry/internal/middleware"
	ucClient "github.com/BruksfildServices01/client-registry/internal/usecase/client"
)

func RegisterRoutes(
	r *gin.Engine,
	repo domain.Repository,
	uc *ucClient.Set,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(repo, uc)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.POST("/schema", clientHandler.InitSchema)

		api.GET("/clients", clientHandler.Find)
		api.POST("/clients", clientHandler.Create)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		api.GET("/clients/:id/phones", clientHandler.ListPhones)
		api.POST("/clients/:id/phones", clientHandler.AddPhone)
		api.DELETE("/clients/:id/phones/:phone", clientHandler.DeletePhone)
	}
}
