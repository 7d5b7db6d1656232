package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/velmora/health-assistant/backend/internal/config"
	"github.com/velmora/health-assistant/backend/internal/handler"
	"github.com/velmora/health-assistant/backend/internal/knowledge"
	"github.com/velmora/health-assistant/backend/internal/service/ai"
	chatservice "github.com/velmora/health-assistant/backend/internal/service/chat"
	documentservice "github.com/velmora/health-assistant/backend/internal/service/document"
	"github.com/velmora/health-assistant/backend/internal/service/resolver"
	"github.com/velmora/health-assistant/backend/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, closeStore, err := newStore(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to open session storage: %v", err)
	}
	defer closeStore()

	chatService := chatservice.NewService(store)

	base := knowledge.NewBase(knowledge.Seed(), cfg.Knowledge.ExtraPhrases...)

	// The generation backend is optional: without credentials the assistant
	// still answers from the knowledge base and falls back gracefully.
	var generator resolver.Generator
	var ingestor *documentservice.Ingestor
	if cfg.AI.Enabled() {
		client := ai.NewClient(cfg.AI)
		generator = client
		ingestor = documentservice.NewIngestor(client)
		log.Println("generation backend initialized successfully")
	} else {
		log.Println("GEMINI_API_KEY not configured, continuing without AI functionality")
	}

	resolverService := resolver.NewService(base, generator)

	router := handler.NewRouter(chatService, resolverService, ingestor)

	startServer(ctx, cfg.Server, router)
}

func newStore(cfg config.StorageConfig) (storage.Store, func(), error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}

	switch cfg.Backend {
	case config.StorageSQLite:
		store, err := storage.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("warning: failed to close session storage: %v", err)
			}
		}, nil
	default:
		store, err := storage.NewFileStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Velmora health assistant backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
