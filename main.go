package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/vasandree/hits-docker-practice/configs"
	"github.com/vasandree/hits-docker-practice/middlewares"
	"github.com/vasandree/hits-docker-practice/pkg/logger"
	"github.com/vasandree/hits-docker-practice/repository"
	"github.com/vasandree/hits-docker-practice/routes"
	"github.com/vasandree/hits-docker-practice/services"
	"github.com/vasandree/hits-docker-practice/ws"
)

func main() {
	cfg := configs.LoadConfig()
	logg := logger.New(logger.Options{Service: "food-ordering", Level: cfg.LogLevel})

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	db := configs.DB()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Shared in-memory state and background workers
	cartStore := repository.NewCartRepository()
	collector := services.NewAnalyticsCollector()
	hub := ws.NewOrderHub(logg)
	sweeper := services.NewCartSweeper(cartStore, cfg.SweepInterval, cfg.CartInactiveMinutes, logg)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.AnalyticsMiddleware(collector))
	routes.RegisterRoutes(r, db, cfg, cartStore, collector, hub)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hub.Run(ctx) })
	g.Go(func() error { return sweeper.Run(ctx) })
	g.Go(func() error {
		logg.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	logg.Info("server stopped")
}
