package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/api"
	"github.com/jengzang/dispatch-backend-go/internal/config"
	"github.com/jengzang/dispatch-backend-go/internal/database"
	"github.com/jengzang/dispatch-backend-go/internal/loader"
	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)
	if cfg.AuthEnabled && cfg.JWTSecret == config.DefaultJWTSecret {
		log.Println("Warning: using the default JWT secret, set JWT_SECRET in production")
	}

	// 数据源
	src, name, err := newSource(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize data source: %v", err)
	}
	defer database.Close()

	dispatchService := service.NewDispatchService(store.New(), src, name)

	// 首次加载，失败即退出
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Data.LoadTimeout)
	_, err = dispatchService.Reload(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	// 初始化路由
	router, stopRouter := api.SetupRouter(cfg, dispatchService)
	defer stopRouter()

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      cfg.Data.LoadTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped")
}

// newSource builds the configured data source and returns a label for
// status reports.
func newSource(cfg *config.Config) (store.Source, string, error) {
	if cfg.Data.Source == "sqlite" {
		if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
			return nil, "", err
		}
		return loader.NewSQLiteSource(database.GetDB()), "sqlite:" + cfg.DBPath, nil
	}

	var src *loader.CSVSource
	label := "csv:" + cfg.Data.Dir
	if cfg.Data.BaseURL != "" {
		src = loader.NewHTTPSource(cfg.Data.BaseURL, cfg.Data.LoadTimeout)
		label = "csv:" + cfg.Data.BaseURL
	} else {
		src = loader.NewDirSource(cfg.Data.Dir)
	}
	src.Files = loader.MergeFiles(src.Files, loader.Files(cfg.Data.Files))
	return src, label, nil
}
