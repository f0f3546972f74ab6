package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nikhilcs/cs-portfolio-api/internal/config"
	"github.com/nikhilcs/cs-portfolio-api/internal/db"
	"github.com/nikhilcs/cs-portfolio-api/internal/handlers"
	"github.com/nikhilcs/cs-portfolio-api/internal/seed"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	// The store is optional: without it the read endpoints serve fallback
	// content and contact submissions are rejected with an error.
	var store *db.Store
	if cfg.DatabaseURL != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		s, err := db.NewStore(connectCtx, cfg.DatabaseURL, cfg.DatabaseName)
		cancel()
		if err != nil {
			log.Printf("db connect failed, serving without store: %v", err)
		} else {
			store = s
			defer store.Close(ctx)
		}
	} else {
		log.Printf("DATABASE_URL not set, serving without store")
	}

	var storeIface handlers.Store
	if store != nil {
		storeIface = store
		seed.Run(ctx, store)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Public marketing API: any origin may call it.
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}).Handler)

	contentHandler := handlers.NewContentHandler(storeIface)
	contactHandler := handlers.NewContactHandler(storeIface)
	diagHandler := handlers.NewDiagnosticsHandler(storeIface)

	r.Get("/", handlers.Root)
	r.Get("/test", diagHandler.Check)
	r.Route("/api", func(r chi.Router) {
		r.Get("/services", contentHandler.ListServices)
		r.Get("/blogs", contentHandler.ListBlogs)
		r.Post("/contact", contactHandler.Submit)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
