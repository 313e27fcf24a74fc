package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/questforge/quest-api/internal/config"
	v1alpha1 "github.com/questforge/quest-api/internal/handlers/api/v1alpha1"
	gameorch "github.com/questforge/quest-api/internal/orchestrators/game"
	progressorch "github.com/questforge/quest-api/internal/orchestrators/progress"
	"github.com/questforge/quest-api/internal/pkg/clock"
	"github.com/questforge/quest-api/internal/pkg/idgen"
	redisclient "github.com/questforge/quest-api/internal/redis"
	achievementrepo "github.com/questforge/quest-api/internal/repositories/achievement"
	characterrepo "github.com/questforge/quest-api/internal/repositories/character"
	gamesessionrepo "github.com/questforge/quest-api/internal/repositories/gamesession"
	questrepo "github.com/questforge/quest-api/internal/repositories/quest"
	"github.com/questforge/quest-api/internal/rules/gamemode"
	"github.com/questforge/quest-api/internal/rules/unlock"
	"github.com/questforge/quest-api/internal/ws"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the quest API HTTP server with all configured services.`,
	RunE:  runServer,
}

var addrFlag string

func init() {
	serverCmd.Flags().StringVar(&addrFlag, "address", "", "listen address, overrides config")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addrFlag != "" {
		cfg.Server.Address = addrFlag
	}

	client, err := redisclient.NewClient(cfg.Redis.Endpoint, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = client.Close() }()

	handler, hub, err := buildHandler(client, cfg)
	if err != nil {
		return err
	}

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	router.HandleFunc("/ws", hub.HandleWS)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "address", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires repositories, orchestrators, and the websocket hub
// behind the API handler.
func buildHandler(client redisclient.Client, cfg *config.Config) (*v1alpha1.Handler, *ws.Hub, error) {
	characterRepo, err := characterrepo.NewRedisRepository(&characterrepo.Config{Client: client})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	achievementRepo, err := achievementrepo.NewRedisRepository(&achievementrepo.Config{Client: client})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create achievement repository: %w", err)
	}
	questRepo, err := questrepo.NewRedisRepository(&questrepo.Config{Client: client})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create quest repository: %w", err)
	}
	sessionRepo, err := gamesessionrepo.NewRedisRepository(&gamesessionrepo.Config{Client: client})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	clk := clock.New()
	registry := unlock.DefaultRegistry()
	hub := ws.NewHub(cfg.Server.AllowedOrigins)

	progressService, err := progressorch.NewOrchestrator(&progressorch.Config{
		CharacterRepo:   characterRepo,
		AchievementRepo: achievementRepo,
		QuestRepo:       questRepo,
		Registry:        registry,
		Clock:           clk,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create progress orchestrator: %w", err)
	}

	gameService, err := gameorch.NewOrchestrator(&gameorch.Config{
		SessionRepo:     sessionRepo,
		CharacterRepo:   characterRepo,
		AchievementRepo: achievementRepo,
		Catalog:         gamemode.DefaultCatalog(),
		Registry:        registry,
		Publisher:       hub,
		Clock:           clk,
		IDGenerator:     idgen.NewUUID("sess"),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create game orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		ProgressService: progressService,
		GameService:     gameService,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create api handler: %w", err)
	}

	return handler, hub, nil
}
