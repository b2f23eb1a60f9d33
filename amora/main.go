package main

import (
	"amora/amora/config"
	"amora/amora/controllers"
	"amora/amora/routes"
	"amora/amora/services/llm"
	"amora/amora/services/safety"
	"amora/amora/sources/psql"
	"amora/amora/sources/psql/dao"
	"amora/amora/sources/psql/models"
	"amora/amora/sources/storage"
	"amora/amora/utils/logging"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	userDAO := dao.NewUserDAO(db.DB)
	personaDAO := dao.NewPersonaDAO(db.DB)
	chatDAO := dao.NewChatDAO(db.DB)
	usageDAO := dao.NewUsageDAO(db.DB)

	seedPersonas(ctx, cfg, personaDAO)

	// Media storage is optional; without it personas serve no photos.
	var media controllers.MediaStore
	if cfg.MinIOEndpoint != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			os.Exit(1)
		}
		media = minioClient
	}

	// Without a Gemini key every reply degrades to the canned fallbacks.
	var generator llm.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel,
			time.Duration(cfg.GenerateTimeoutSeconds)*time.Second)
		if err != nil {
			logging.ErrorLogger.Error("gemini client error", zap.Error(err))
			os.Exit(1)
		}
		generator = gemini
	} else {
		logging.AppLogger.Warn("GEMINI_API_KEY not set, persona replies will use fallbacks only")
	}

	authCtrl := controllers.NewAuthController(userDAO, cfg)
	personaCtrl := controllers.NewPersonaController(personaDAO, media)
	usageCtrl := controllers.NewUsageController(usageDAO, cfg.SwipeDailyLimit, cfg.MessageDailyLimit)
	swipeCtrl := controllers.NewSwipeController(db.DB, usageDAO, chatDAO, personaDAO,
		controllers.RandomMatchPolicy{Threshold: cfg.MatchThreshold}, cfg.SwipeDailyLimit)
	chatCtrl := controllers.NewChatController(db.DB, chatDAO, personaDAO, usageDAO,
		generator, safety.NewFilter(safety.DefaultRules),
		cfg.MessageDailyLimit, cfg.HistoryWindow, cfg.OnLimitReached)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
	}))

	r.Get("/health", healthCtrl.HealthCheck)
	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/personas", routes.PersonaRoutes(personaCtrl, cfg))
	r.Mount("/chats", routes.ChatRoutes(chatCtrl, personaCtrl, cfg))
	r.Mount("/usage", routes.UsageRoutes(usageCtrl, cfg))
	r.Mount("/functions", routes.FunctionRoutes(swipeCtrl, chatCtrl, cfg))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	logging.AppLogger.Info("server started", zap.String("addr", cfg.ListenAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}

func seedPersonas(ctx context.Context, cfg config.Config, personaDAO *dao.PersonaDAO) {
	seeds, err := config.LoadPersonaSeeds(cfg.PersonaSeedFile)
	if err != nil {
		logging.AppLogger.Warn("persona seed file not loaded", zap.Error(err))
		return
	}
	personas := make([]models.Persona, 0, len(seeds))
	for _, s := range seeds {
		vibes, err := json.Marshal(s.Vibes)
		if err != nil {
			continue
		}
		personas = append(personas, models.Persona{
			Name:        s.Name,
			Age:         s.Age,
			Gender:      s.Gender,
			Bio:         s.Bio,
			Location:    s.Location,
			Vibes:       vibes,
			PhotoKey:    s.PhotoKey,
			PromptNotes: s.PromptNotes,
		})
	}
	if err := personaDAO.SeedPersonas(ctx, personas); err != nil {
		logging.ErrorLogger.Error("persona seeding failed", zap.Error(err))
		return
	}
	logging.AppLogger.Info("personas seeded", zap.Int("count", len(personas)))
}
