package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/config"
	"portfolio-admin/internal/devserver"
)

var (
	serveEmail    string
	servePassword string
	serveName     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the in-memory development API server",
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := config.Load()
		if err != nil {
			exitErr("failed to load configuration", err)
		}

		server := devserver.New(cfg.DevServer.JWTSecret,
			cfg.DevServer.AccessExpiration, cfg.DevServer.RefreshExpiration)
		if err := server.SeedAdmin(serveEmail, servePassword, serveName); err != nil {
			exitErr("failed to seed admin account", err)
		}

		addr := fmt.Sprintf("%s:%s", cfg.DevServer.Host, cfg.DevServer.Port)
		srv := &http.Server{
			Addr:         addr,
			Handler:      server.Handler(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.Printf("Starting portfolio dev server on %s (admin: %s)", addr, serveEmail)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Server failed to start: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}

		log.Println("Server stopped gracefully")
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveEmail, "admin-email", "admin@localhost", "Seeded admin email")
	serveCmd.Flags().StringVar(&servePassword, "admin-password", "changeme-dev", "Seeded admin password")
	serveCmd.Flags().StringVar(&serveName, "admin-name", "Local Admin", "Seeded admin name")
}
