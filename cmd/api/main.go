package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	"github.com/BruksfildServices01/client-registry/internal/config"
	dbpkg "github.com/BruksfildServices01/client-registry/internal/db"
	"github.com/BruksfildServices01/client-registry/internal/infra/repository"
	"github.com/BruksfildServices01/client-registry/internal/logging"
	"github.com/BruksfildServices01/client-registry/internal/routes"
	ucClient "github.com/BruksfildServices01/client-registry/internal/usecase/client"
)

func main() {

	cfg := config.Load()
	logging.Setup(os.Stderr, cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logging.L.Fatal("database unavailable", "err", err)
	}
	defer dbpkg.Close(db)

	repo := repository.NewClientGormRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repo.InitializeSchema(ctx); err != nil {
		cancel()
		logging.L.Fatal("schema init failed", "err", err)
	}
	cancel()

	dispatcher := audit.NewDispatcher(audit.New(nil), cfg.AuditQueueSize)
	defer dispatcher.Close()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, repo, ucClient.NewSet(repo, dispatcher), cfg)

	logging.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logging.L.Fatal("failed to start server", "err", err)
	}
}
