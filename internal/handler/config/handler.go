package config

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chameleonlabs/chameleon/backend/internal/model/chatbot"
	"github.com/chameleonlabs/chameleon/backend/pkg/utils"
)

// Handler serves read-only chatbot configuration data to the frontend.
type Handler struct {
	configs chatbot.Store
}

// New creates the configuration handler.
func New(configs chatbot.Store) *Handler {
	return &Handler{configs: configs}
}

// RegisterRoutes mounts the configuration endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/public", h.handleListPublic)
	r.Get("/public/{configID}", h.handleGetPublic)
}

// handleListPublic lists every publicly shared chatbot.
func (h *Handler) handleListPublic(w http.ResponseWriter, _ *http.Request) {
	public := h.configs.ListPublic()
	if public == nil {
		public = []chatbot.Config{}
	}
	utils.RespondJSON(w, http.StatusOK, public)
}

// handleGetPublic returns one public chatbot; private configurations look
// exactly like missing ones.
func (h *Handler) handleGetPublic(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.configs.FindByID(chi.URLParam(r, "configID"))
	if !ok || !cfg.IsPublic {
		utils.RespondError(w, http.StatusNotFound, "public chatbot not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, cfg)
}
