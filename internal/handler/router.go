package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	askHandler "github.com/danendrashafi/ai-portfolio/backend/internal/handler/ask"
	profileHandler "github.com/danendrashafi/ai-portfolio/backend/internal/handler/profile"
	"github.com/danendrashafi/ai-portfolio/backend/internal/handler/stream"
	"github.com/danendrashafi/ai-portfolio/backend/internal/handler/ws"
	middlewarePkg "github.com/danendrashafi/ai-portfolio/backend/internal/middleware"
	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
	askService "github.com/danendrashafi/ai-portfolio/backend/internal/service/ask"
	"github.com/danendrashafi/ai-portfolio/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the ask service.
func NewRouter(p *profile.Profile, askSvc *askService.Service, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.Logger(logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	askHandler.New(askSvc, logger).RegisterRoutes(r)
	profileHandler.New(p).RegisterRoutes(r)
	stream.New(askSvc, logger).RegisterRoutes(r)
	ws.New(askSvc, logger).RegisterRoutes(r)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}
