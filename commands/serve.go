package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/task-exchange-api/fixtures"
	"github.com/kendall-kelly/task-exchange-api/routes"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	log.Println("Starting Task Exchange API server...")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, fresh, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(st)

	if fresh {
		log.Println("New database, loading fixtures")
		src, err := fixtures.NewSource(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if _, err := fixtures.Seed(cmd.Context(), st, src); err != nil {
			return fmt.Errorf("%w (fix the fixtures and run the seed command)", err)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.SetupRouter(st, cfg),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server is running on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Println("Server exiting")
	return nil
}
