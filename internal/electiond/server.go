package electiond

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/pkg/httpserver"
	"github.com/zhulik/ballotbox/pkg/json"
)

// Server exposes an election service over HTTP.
type Server struct {
	*httpserver.Server

	elections core.ElectionService
}

func NewServer(injector *do.Injector) (*Server, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	store, err := do.Invoke[*Store](injector)
	if err != nil {
		return nil, err
	}

	srv, err := httpserver.NewServer(injector, "electiond.Server", config.HTTPPort())
	if err != nil {
		return nil, err
	}

	server := &Server{
		Server:    srv,
		elections: store,
	}

	srv.Router.GET("/elections", server.listElections)
	srv.Router.POST("/elections", server.createElection)
	srv.Router.POST("/auth/weak-login", server.weakLogin)
	srv.Router.POST("/elections/:id/start", server.startElection)

	return server, nil
}

func (s *Server) listElections(c *gin.Context) {
	ids := c.QueryArray("ids")

	if len(ids) == 0 {
		elections, err := s.elections.ListElections(c.Request.Context())
		if err != nil {
			s.fail(c, err)

			return
		}

		c.JSON(http.StatusOK, core.ElectionsResponse{Elections: elections})

		return
	}

	elections, err := s.elections.GetElections(c.Request.Context(), ids)
	if err != nil {
		s.fail(c, err)

		return
	}

	if len(elections) == 0 {
		s.fail(c, core.ErrElectionNotFound)

		return
	}

	c.JSON(http.StatusOK, core.ElectionsResponse{Elections: elections})
}

func (s *Server) createElection(c *gin.Context) {
	input, err := json.Decode[core.CreateElectionInput](c.Request.Body)
	if err != nil {
		s.fail(c, errors.Join(core.ErrInvalidInput, err))

		return
	}

	output, err := s.elections.CreateElection(c.Request.Context(), input)
	if err != nil {
		s.fail(c, err)

		return
	}

	s.Logger.WithField("electionID", output.Election.ID).Info("Election created")

	c.JSON(http.StatusCreated, output)
}

func (s *Server) weakLogin(c *gin.Context) {
	input, err := json.Decode[core.WeakLoginInput](c.Request.Body)
	if err != nil || input.AdminToken == "" {
		s.fail(c, errors.Join(core.ErrInvalidInput, err))

		return
	}

	token, err := s.elections.WeakLogin(c.Request.Context(), input.AdminToken)
	if err != nil {
		s.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, core.WeakLoginOutput{AccessToken: token})
}

func (s *Server) startElection(c *gin.Context) {
	id := c.Param("id")

	token, ok := strings.CutPrefix(c.GetHeader(core.AuthorizationHeaderName), core.BearerPrefix)
	if !ok || token == "" {
		s.fail(c, core.ErrUnauthorized)

		return
	}

	err := s.elections.StartElection(c.Request.Context(), id, token)
	if err != nil {
		s.fail(c, err)

		return
	}

	s.Logger.WithField("electionID", id).Info("Election started")

	c.Status(http.StatusNoContent)
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.Error(err) //nolint:errcheck

		return
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrElectionNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
