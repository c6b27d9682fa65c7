package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vitalio/triage-api/external/medtext"
	"github.com/vitalio/triage-api/geo"
	"github.com/vitalio/triage-api/logmodule"
	"github.com/vitalio/triage-api/match"
	"github.com/vitalio/triage-api/store"
	"github.com/vitalio/triage-api/workflow"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore
	archive    *store.ReportArchive

	// Assessment pipeline
	pipeline *workflow.Pipeline
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	archive *store.ReportArchive,
	analyzer medtext.MedText,
	resolver geo.LocationResolver) *Server {
	matcher := match.NewMatcher(mongoStore)

	var pipelineArchive workflow.ReportArchive
	if archive != nil {
		pipelineArchive = archive
	}

	return &Server{
		mongoStore: mongoStore,
		archive:    archive,
		pipeline:   workflow.NewPipeline(analyzer, matcher, pipelineArchive, resolver),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	assessmentRoute := apiRoute.Group("/assessments")
	{
		assessmentRoute.POST("", s.createAssessment)
	}

	reportRoute := apiRoute.Group("/reports")
	reportRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		reportRoute.GET("/:reportID", s.getReport)
	}

	providerRoute := apiRoute.Group("/providers")
	{
		providerRoute.POST("", s.addProvider)
		providerRoute.PATCH("/:providerID/availability", s.updateProviderAvailability)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping provider store
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if s.archive != nil {
		if err := s.archive.Ping(); shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
