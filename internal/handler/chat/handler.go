package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chameleonlabs/chameleon/backend/internal/model/chatbot"
	chatservice "github.com/chameleonlabs/chameleon/backend/internal/service/chat"
	"github.com/chameleonlabs/chameleon/backend/internal/service/persona"
	"github.com/chameleonlabs/chameleon/backend/pkg/utils"
)

const conversationCookie = "conversation_id"

// Handler exposes the chat turn endpoints. It owns the boundary duties the
// pipeline expects from its caller: minting conversation identifiers and
// resolving the chatbot configuration for the requested route.
type Handler struct {
	chatSvc *chatservice.Service
	configs chatbot.Store
}

// New creates the chat handler.
func New(chatSvc *chatservice.Service, configs chatbot.Store) *Handler {
	return &Handler{chatSvc: chatSvc, configs: configs}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleDefaultChat)
	r.Post("/chat/{configID}", h.handleConfigChat)
	r.Post("/public/{configID}", h.handlePublicChat)
}

type turnPayload struct {
	UserInput      string `json:"userInput"`
	ConversationID string `json:"conversationId"`
}

// handleDefaultChat serves callers without a chatbot configuration of their
// own; the persona resolver falls back to the built-in defaults.
func (h *Handler) handleDefaultChat(w http.ResponseWriter, r *http.Request) {
	h.processTurn(w, r, nil)
}

// handleConfigChat chats with a specific configuration.
func (h *Handler) handleConfigChat(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.configs.FindByID(chi.URLParam(r, "configID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "chatbot configuration not found")
		return
	}
	h.processTurn(w, r, &cfg)
}

// handlePublicChat chats with a publicly shared configuration; private
// configurations are indistinguishable from missing ones.
func (h *Handler) handlePublicChat(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.configs.FindByID(chi.URLParam(r, "configID"))
	if !ok || !cfg.IsPublic {
		utils.RespondError(w, http.StatusNotFound, "public chatbot not found")
		return
	}
	h.processTurn(w, r, &cfg)
}

func (h *Handler) processTurn(w http.ResponseWriter, r *http.Request, cfg *chatbot.Config) {
	var payload turnPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserInput == "" {
		utils.RespondError(w, http.StatusBadRequest, "userInput is required")
		return
	}

	conversationID := h.resolveConversationID(w, r, payload.ConversationID)
	resolution := persona.Resolve(cfg)

	result := h.chatSvc.HandleTurn(r.Context(), chatservice.TurnRequest{
		UserText:       payload.UserInput,
		ConversationID: conversationID,
		Persona:        resolution.Persona,
		Backstory:      resolution.Backstory,
		Voice:          resolution.Voice,
	})

	utils.RespondJSON(w, http.StatusOK, result)
}

// resolveConversationID prefers the payload, then the session cookie, and
// finally mints a fresh identifier which is pinned via Set-Cookie.
func (h *Handler) resolveConversationID(w http.ResponseWriter, r *http.Request, fromPayload string) string {
	if fromPayload != "" {
		return fromPayload
	}

	if cookie, err := r.Cookie(conversationCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     conversationCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}
