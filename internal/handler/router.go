package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/velmora/health-assistant/backend/internal/handler/assistant"
	"github.com/velmora/health-assistant/backend/internal/handler/document"
	"github.com/velmora/health-assistant/backend/internal/handler/live"
	"github.com/velmora/health-assistant/backend/internal/handler/session"
	middlewarePkg "github.com/velmora/health-assistant/backend/internal/middleware"
	chatservice "github.com/velmora/health-assistant/backend/internal/service/chat"
	documentservice "github.com/velmora/health-assistant/backend/internal/service/document"
	"github.com/velmora/health-assistant/backend/internal/service/resolver"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatservice.Service, resolverSvc *resolver.Service, ingestor *documentservice.Ingestor) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	assistantHandler := assistant.New(chatSvc, resolverSvc)
	sessionHandler := session.New(chatSvc)
	documentHandler := document.New(ingestor, chatSvc)
	liveHandler := live.New(chatSvc, resolverSvc)

	r.Route("/api", func(api chi.Router) {
		assistantHandler.RegisterRoutes(api)
		sessionHandler.RegisterRoutes(api)
		documentHandler.RegisterRoutes(api)
		liveHandler.RegisterRoutes(api)
	})

	return r
}
