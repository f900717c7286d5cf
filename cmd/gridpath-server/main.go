// Command gridpath-server serves A* and greedy best-first grid searches over HTTP.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thalath/gridpath/api"
	pathfindapi "github.com/thalath/gridpath/api/pathfind"
	"github.com/thalath/gridpath/config"
)

const (
	searchTimeout   = 2 * time.Second
	resultCapacity  = 256
	shutdownTimeout = 5 * time.Second
)

var (
	cfg    config.Config
	router *api.Router
)

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	gin.SetMode(cfg.GinMode)
	log.Printf("[APP] [INFO] config loaded, default algorithm %s", cfg.Algorithm)
}

func initRouter() {
	searchController := pathfindapi.NewSearchController(pathfindapi.Config{
		DefaultAlgorithm: cfg.Algorithm,
		Timeout:          searchTimeout,
		Capacity:         resultCapacity,
	})
	router = api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		Controllers: []api.Controller{searchController},
	})
	log.Println("[APP] [INFO] router initialized")
}

func main() {
	initConfig()
	initRouter()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[APP] [INFO] listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[APP] [FATAL] starting server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[APP] [INFO] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[APP] [INFO] forced shutdown: %v", err)
	}
}
