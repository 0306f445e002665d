package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router *gin.Engine
	Logger logrus.FieldLogger

	server http.Server
}

// NewServer creates a gin server listening on all interfaces on the given port.
func NewServer(injector *do.Injector, component string, port int) (*Server, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	logger = logger.WithField("component", component)

	router := NewRouter(logger)

	return &Server{
		Router: router,
		Logger: logger,
		server: http.Server{
			Addr:              fmt.Sprintf("0.0.0.0:%d", port),
			ReadHeaderTimeout: ReadHeaderTimeout,
			Handler:           router,
		},
	}, nil
}

func (s *Server) Addr() string {
	return s.server.Addr
}

func (s *Server) HealthCheck() error {
	s.Logger.Debug("Server health check.")

	return nil
}

func (s *Server) Shutdown() error {
	s.Logger.Info("Server shutting down...")
	defer s.Logger.Info("Server shot down.")

	return s.server.Shutdown(context.Background()) //nolint:wrapcheck
}

// Run blocks until the server is shut down. It returns nil after Shutdown.
func (s *Server) Run() error {
	s.Logger.Info("Starting server at: ", s.server.Addr)

	err := s.server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}
