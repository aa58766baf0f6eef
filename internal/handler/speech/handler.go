package speech

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	speechmodel "github.com/chameleonlabs/chameleon/backend/internal/model/speech"
	speechsvc "github.com/chameleonlabs/chameleon/backend/internal/service/speech"
	"github.com/chameleonlabs/chameleon/backend/pkg/utils"
)

// Handler exposes speech synthesis outside the chat pipeline.
type Handler struct {
	synthesizer *speechsvc.Synthesizer
}

// New creates the speech handler.
func New(synthesizer *speechsvc.Synthesizer) *Handler {
	return &Handler{synthesizer: synthesizer}
}

// RegisterRoutes mounts the synthesis endpoints and the voice catalog.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/speech", func(speechRouter chi.Router) {
		speechRouter.Post("/synthesize", h.handleSynthesize)
		speechRouter.Get("/health", h.handleHealth)
	})
	r.Get("/voices", h.handleListVoices)
}

// handleSynthesize renders arbitrary text with a selected voice and returns
// the served audio path.
func (h *Handler) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var payload speechmodel.TTSRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Text == "" {
		utils.RespondError(w, http.StatusBadRequest, "text is required")
		return
	}
	if payload.ConversationID == "" {
		payload.ConversationID = uuid.NewString()
	}

	result := h.synthesizer.Synthesize(r.Context(), payload)
	utils.RespondJSON(w, http.StatusOK, result)
}

// handleListVoices returns the selectable voice names.
func (h *Handler) handleListVoices(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string][]string{
		"voices": h.synthesizer.Catalog().Names(),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
