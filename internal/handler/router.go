package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/chameleonlabs/chameleon/backend/internal/handler/chat"
	confighandler "github.com/chameleonlabs/chameleon/backend/internal/handler/config"
	speechhandler "github.com/chameleonlabs/chameleon/backend/internal/handler/speech"
	middlewarePkg "github.com/chameleonlabs/chameleon/backend/internal/middleware"
	"github.com/chameleonlabs/chameleon/backend/internal/model/chatbot"
	chatservice "github.com/chameleonlabs/chameleon/backend/internal/service/chat"
	speechservice "github.com/chameleonlabs/chameleon/backend/internal/service/speech"
)

// StaticConfig tells the router where generated audio lives on disk and the
// public prefix it is served under.
type StaticConfig struct {
	AudioDir     string
	PublicPrefix string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(configs chatbot.Store, chatSvc *chatservice.Service, synthesizer *speechservice.Synthesizer, static StaticConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(chatSvc, configs)
	configHandler := confighandler.New(configs)
	speechHandler := speechhandler.New(synthesizer)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		configHandler.RegisterRoutes(api)
		speechHandler.RegisterRoutes(api)
	})

	// Generated audio files are served straight from the synthesizer's
	// output directory.
	fileServer := http.StripPrefix(static.PublicPrefix+"/", http.FileServer(http.Dir(static.AudioDir)))
	r.Handle(static.PublicPrefix+"/*", fileServer)

	return r
}
