// Package server exposes the disassembly service over HTTP: one endpoint
// per architecture, a shared request envelope and the mapping from the
// error taxonomy onto response statuses.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/maxwase/disasmd/config"
)

// Server is the disassembly HTTP server.
type Server struct {
	conf   *config.Config
	router *gin.Engine
	srv    *http.Server
}

// New creates a new server for the given config.
func New(conf *config.Config) *Server {
	if conf.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{conf: conf, router: gin.New()}
	s.router.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

// Router returns the route handlers, used by tests.
func (s *Server) Router() http.Handler { return s.router }

// Start serves requests until Stop is called.
func (s *Server) Start() error {
	s.srv = &http.Server{Addr: s.conf.Listen, Handler: s.router}

	log.WithField("addr", s.conf.Listen).Info("listening")
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
