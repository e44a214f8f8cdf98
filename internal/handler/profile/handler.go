package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
	"github.com/danendrashafi/ai-portfolio/backend/pkg/utils"
)

// Handler serves the public profile summary.
type Handler struct {
	summary profile.Summary
}

// New creates the profile handler. The summary is taken once since the
// profile never changes after startup.
func New(p *profile.Profile) *Handler {
	return &Handler{summary: p.Summary()}
}

// RegisterRoutes registers GET /profile.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.handleGetProfile)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.summary)
}
