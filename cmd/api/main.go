package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"bigpicture_agent/pkg/api/analyze"
	"bigpicture_agent/pkg/core/agent"
	"bigpicture_agent/pkg/core/config"
	"bigpicture_agent/pkg/core/prompt"
	"bigpicture_agent/pkg/core/store"
	"bigpicture_agent/pkg/core/utils"
)

func main() {
	// Load environment variables
	godotenv.Load()
	utils.InitLogger()

	cfg := config.Load()
	if err := cfg.ApplyFile("config/app.hjson"); err != nil {
		utils.Logger.Warn().Err(err).Msg("failed to apply config overlay, using env values")
	}

	// Prompt library: built-in prompts plus optional overrides from resources/
	if err := prompt.LoadFromDirectory("resources"); err != nil {
		utils.Logger.Info().Msg("no prompt overrides found, using built-in prompts")
	} else {
		utils.Logger.Info().Int("prompts", prompt.Get().Count()).Msg("prompt library loaded")
	}

	// Agent/provider routing from config
	var agentCfg agent.Config
	if data, err := os.ReadFile(cfg.ModelsFile); err == nil {
		if err := yaml.Unmarshal(data, &agentCfg); err != nil {
			utils.Logger.Warn().Err(err).Str("file", cfg.ModelsFile).Msg("invalid models config, falling back to defaults")
		}
	}
	agentMgr := agent.NewManager(agentCfg, cfg)

	// Record store: direct Postgres when DATABASE_URL is set, Supabase REST
	// otherwise.
	var partStore store.PartStore
	if cfg.DatabaseURL != "" {
		pgStore, err := store.NewPostgresStore(context.Background(), cfg.DatabaseURL)
		if err != nil {
			utils.Logger.Fatal().Err(err).Msg("failed to connect to Postgres record store")
		}
		defer pgStore.Close()
		partStore = pgStore
		utils.Logger.Info().Msg("record store: Postgres")
	} else {
		partStore = store.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		utils.Logger.Info().Msg("record store: Supabase REST")
	}

	pipeline := agent.NewPipeline(partStore, agentMgr)
	handler := analyze.NewHandler(pipeline, cfg.AllowedOrigin)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.HandleRoot)
	mux.HandleFunc("/health", handler.HandleHealth)
	mux.HandleFunc("/analyze-part/", handler.HandleAnalyzePart)
	mux.HandleFunc("/analyze-part", handler.HandleAnalyzePart)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
		// The narrative call can legitimately take a minute; the write
		// timeout has to outlive it.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Info().Int("port", cfg.Port).Str("provider", agentMgr.GetActiveProvider()).Msg("API server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("shutdown error")
	}
}
