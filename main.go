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

	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"reelstream/api"
	"reelstream/config"
	"reelstream/handlers"
	"reelstream/services/catalog"
	"reelstream/services/mylist"
	"reelstream/services/tmdb"
	"reelstream/utils"
)

func main() {
	cfg := config.Load()
	cfgManager := config.NewManager(cfg)

	if cfg.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	}

	if cfg.TMDBAPIKey == "" {
		log.Printf("[main] TMDB_API_KEY is not set; catalog endpoints will return configuration errors")
	}

	tmdbSvc := tmdb.NewService(cfg.TMDBAPIKey, cfg.TMDBLanguage, nil)
	lists := mylist.NewService()
	orch := catalog.NewOrchestrator(tmdbSvc, lists, catalog.DefaultCategories())
	lists.AddListener(orch.OnMyListChange)

	catalogHandler := handlers.NewCatalogHandler(tmdbSvc)
	myListHandler := handlers.NewMyListHandler(lists)
	browseHandler := handlers.NewBrowseHandler(orch)

	r := utils.NewRouter(cfgManager.Get().ExtraAllowedOrigins)
	r.Use(api.RequestLoggingMiddleware())

	// Catalog endpoints proxy TMDB, so they get a per-IP budget.
	catalogLimiter := api.NewIPRateLimiter(rate.Every(time.Second), 30)
	catalogRouter := r.PathPrefix("/api/catalog").Subrouter()
	catalogRouter.Use(api.RateLimitMiddleware(catalogLimiter))
	catalogRouter.HandleFunc("/trending", catalogHandler.Trending).Methods(http.MethodGet)
	catalogRouter.HandleFunc("/details/{mediaType}/{id}", catalogHandler.Details).Methods(http.MethodGet)
	catalogRouter.HandleFunc("/genres/{mediaType}", catalogHandler.Genres).Methods(http.MethodGet)

	r.HandleFunc("/api/users/{userID}/mylist", myListHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{userID}/mylist/toggle", myListHandler.Toggle).Methods(http.MethodPost)

	r.HandleFunc("/api/browse/sessions", browseHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/browse/sessions/{sessionID}", browseHandler.Snapshot).Methods(http.MethodGet)
	r.HandleFunc("/api/browse/sessions/{sessionID}", browseHandler.Close).Methods(http.MethodDelete)
	r.HandleFunc("/api/browse/sessions/{sessionID}/select", browseHandler.Select).Methods(http.MethodPost)
	r.HandleFunc("/api/browse/sessions/{sessionID}/detail", browseHandler.Detail).Methods(http.MethodGet)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[main] listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown error: %v", err)
	}
}
