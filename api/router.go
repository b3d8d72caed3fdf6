package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kian-mehta/ExtendedEssay/api/i"
	"github.com/sirupsen/logrus"
)

// How long Run waits for in-flight requests when shutting down.
const shutdownTimeout = 5 * time.Second

// Router manages the HTTP server and the controllers serving it.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	log         logrus.FieldLogger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	// Receives one entry per request. Defaults to the standard logrus
	// logger.
	Logger logrus.FieldLogger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         log,
	}
}

// Logs each request once it has been served.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		entry := log.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  ctx.Writer.Status(),
			"latency": time.Since(start),
		})
		if len(ctx.Errors) != 0 {
			entry.WithField("errors", ctx.Errors.String()).Warn("Request failed")
			return
		}
		entry.Info("Request served")
	}
}

// Builds the gin engine with every controller's routes registered under
// <baseURL>/v1.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.log))
	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}
	return router
}

// Starts the HTTP server and blocks until ctx is canceled or the server
// fails. On cancellation, in-flight requests are given a few seconds to
// finish.
func (r *Router) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    r.addr,
		Handler: r.Handler(),
	}
	errs := make(chan error, 1)
	go func() {
		r.log.WithField("addr", r.addr).Info("Listening")
		errs <- server.ListenAndServe()
	}()
	select {
	case e := <-errs:
		return e
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		shutdownTimeout)
	defer cancel()
	e := server.Shutdown(shutdownCtx)
	if e != nil {
		return e
	}
	e = <-errs
	if errors.Is(e, http.ErrServerClosed) {
		return nil
	}
	return e
}
