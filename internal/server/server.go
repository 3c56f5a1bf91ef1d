// Package server expose l'API HTTP et la page web de consultation des
// transcripts. L'API est sans état : voir payloads.go.
package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/patrickprogramme/webscribe/internal/config"
	"github.com/patrickprogramme/webscribe/internal/logger"
	"github.com/patrickprogramme/webscribe/internal/transcript"
	"github.com/patrickprogramme/webscribe/internal/webui"
	"github.com/patrickprogramme/webscribe/pkg/model"
)

// VideoSource abstrait l'accès à YouTube ; *yt.Client l'implémente,
// les tests injectent un stub.
type VideoSource interface {
	Metadata(ctx context.Context, videoID string) (*model.VideoMeta, error)
	ListTracks(ctx context.Context, videoID string) ([]model.LanguageTrack, string, error)
	FetchSegments(ctx context.Context, videoID, languageCode string) ([]transcript.Segment, error)
}

// Server regroupe les dépendances des handlers.
type Server struct {
	cfg      *config.Config
	log      *logger.Logger
	source   VideoSource
	renderer *webui.Renderer
}

// New construit un Server prêt à router.
func New(cfg *config.Config, log *logger.Logger, source VideoSource, renderer *webui.Renderer) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		source:   source,
		renderer: renderer,
	}
}

// Router construit le moteur gin avec middlewares et routes.
func (s *Server) Router() *gin.Engine {
	if s.cfg.Server.Mode == "prod" || s.cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(s.log))
	r.Use(CORS(s.cfg.Server.AllowedOrigins))

	r.GET("/", s.handleIndex)
	r.GET("/healthcheck", s.handleHealthcheck)

	api := r.Group("/api")
	{
		api.POST("/fetch", s.handleFetch)
		api.POST("/load_transcript", s.handleLoadTranscript)
		api.POST("/apply_options", s.handleApplyOptions)
		api.POST("/export", s.handleExport)
	}

	return r
}
