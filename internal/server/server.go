// Package server exposes the HTTP surface. Handlers receive their adapters
// at construction; there is no ambient client state.
package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"agrivoice-go/internal/ai"
	"agrivoice-go/internal/logger"
	"agrivoice-go/internal/pipeline"
	"agrivoice-go/internal/store"
)

type Server struct {
	orch      *pipeline.Orchestrator
	store     store.Service
	suggester ai.SuggestionService
	log       *logger.Logger
	jwtSecret []byte
	aiReady   bool
}

func New(orch *pipeline.Orchestrator, st store.Service, sg ai.SuggestionService, log *logger.Logger, jwtSecret string, aiReady bool) *Server {
	return &Server{
		orch:      orch,
		store:     st,
		suggester: sg,
		log:       log.Component("server"),
		jwtSecret: []byte(jwtSecret),
		aiReady:   aiReady,
	}
}

// Router builds the echo instance with all routes registered.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", s.Health)
	e.POST("/complete-voice-process", s.CompleteVoiceProcess)
	e.POST("/register", s.Register)
	e.POST("/login", s.Login)
	e.POST("/check-status", s.CheckStatus)
	e.POST("/update-product-status", s.UpdateProductStatus)
	e.POST("/check-unsold-products", s.CheckUnsoldProducts)

	return e
}
