package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/adapter/repo"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/discovery"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/http/handlers"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/http/httpapi"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra/geoip"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/middleware"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/providers/suggest"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/quota"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	users := repo.NewUserRepository(runner)
	profiles := repo.NewProfileRepository(runner)
	tenders := repo.NewTenderRepository(runner)
	quotes := repo.NewQuoteRepository(runner)
	availability := repo.NewAvailabilityRepository(runner)

	geoResolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}

	app := &handlers.App{
		Logger:         logger,
		Users:          users,
		Tenders:        tenders,
		Quotes:         quotes,
		Availability:   availability,
		Engine:         discovery.NewEngine(profiles, logger),
		Enforcer:       quota.NewEnforcer(tenders, quotes, logger, nil),
		GeoIP:          geoResolver,
		Suggester:      buildSuggester(cfg, logger),
		SuggestLimiter: middleware.NewSuggestLimiter(middleware.NewMemoryCounterStore(), cfg.SuggestCooldown, cfg.SuggestDailyCap),
		Validate:       validator.New(),
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// buildSuggester wires the OpenAI-compatible client when a key is configured
// and falls back to the static templater otherwise.
func buildSuggester(cfg *infra.Config, logger zerolog.Logger) suggest.Suggester {
	static := suggest.NewStaticSuggester()
	if cfg.SuggestAPIKey == "" {
		logger.Info().Msg("suggest api key not set, using static suggester")
		return static
	}
	s, err := suggest.NewOpenAISuggester(suggest.OpenAIOptions{
		APIKey:   cfg.SuggestAPIKey,
		Model:    cfg.SuggestModel,
		BaseURL:  cfg.SuggestBaseURL,
		Fallback: static,
		OnFallback: func(reason string, err error) {
			logger.Warn().Err(err).Str("reason", reason).Msg("suggest fallback")
		},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("openai suggester init failed, using static")
		return static
	}
	return s
}
