package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/shrey-c/resume-chatbot/internal/agent"
	"github.com/shrey-c/resume-chatbot/internal/agent/model"
	"github.com/shrey-c/resume-chatbot/internal/auth"
	"github.com/shrey-c/resume-chatbot/internal/core"
	"github.com/shrey-c/resume-chatbot/internal/llm"
	"github.com/shrey-c/resume-chatbot/internal/pdfimport"
	"github.com/shrey-c/resume-chatbot/internal/resume"
	"github.com/shrey-c/resume-chatbot/internal/server"
	"github.com/shrey-c/resume-chatbot/internal/sitecontext"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
	pkgredis "github.com/shrey-c/resume-chatbot/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure
	Redis  pkgredis.Config
	LLM    llm.Config
	Server server.Config

	// Agent configs
	Research   model.ResearchModelConfig
	Response   model.ResponseModelConfig
	Validation model.ValidationConfig
	Prompt     model.PromptConfig
	Workflow   model.WorkflowConfig

	// Peripherals
	Site      sitecontext.Config
	Auth      auth.Config
	RateLimit server.RateLimitConfig
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio site and chatbot API",
	RunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		return runServe(cmd.Context(), envFile)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, envFile string) error {
	if err := godotenv.Load(envFile); err != nil {
		logx.Warn().Str("file", envFile).Msg("No environment file loaded")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}

	logx.Init(logx.LoggerOpts{Environment: core.FromEnv()})

	gw := llm.NewClient(cfg.LLM)
	store := resume.NewStore(resume.Default())
	provider := sitecontext.NewProvider(cfg.Site, store)
	bot := agent.NewChatbot(gw, provider, agent.Config{
		Research:   cfg.Research,
		Response:   cfg.Response,
		Validation: cfg.Validation,
		Prompt:     cfg.Prompt,
		Workflow:   cfg.Workflow,
	})

	limiter := server.NewRateLimiter(nil, cfg.RateLimit)
	if cfg.Redis.Enabled() {
		rdb, err := cfg.Redis.New()
		if err != nil {
			return err
		}
		defer rdb.Close()
		limiter = server.NewRateLimiter(rdb, cfg.RateLimit)
		logx.Info().Msg("Redis rate limiting enabled")
	} else {
		logx.Warn().Msg("REDIS_URL not set, chat rate limiting disabled")
	}

	srv := server.New(
		cfg.Server,
		bot,
		store,
		auth.NewAuthenticator(cfg.Auth),
		pdfimport.NewParser(gw),
		provider,
		limiter,
		gw.Model(),
	)

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", httpSrv.Addr).Str("model", gw.Model()).Msg("Server listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stop:
		logx.Info().Msg("Shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
