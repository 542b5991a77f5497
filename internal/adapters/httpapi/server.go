// Package httpapi surfaces the sorter as a small REST API: one endpoint
// that runs a sort and returns the report. Authentication and sessions
// belong to whatever sits in front of it.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordina/internal/application"
	"ordina/internal/application/commands"
	"ordina/internal/config"
)

// Server wraps the gin router and the sorter configuration.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
}

// New builds the HTTP server and registers its routes.
func New(cfg *config.Config, log *slog.Logger) *Server {
	s := &Server{cfg: cfg, log: log, router: gin.Default()}

	s.router.GET("/healthz", s.health)
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/sort", s.sort)
	}
	return s
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

type sortRequest struct {
	ParentID string `json:"parent_id" binding:"required"`
	DryRun   bool   `json:"dry_run"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) sort(c *gin.Context) {
	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := commands.OptionsFromConfig(s.cfg)
	opts.DryRun = req.DryRun

	pipeline, closer, err := commands.BuildPipeline(c.Request.Context(), s.cfg, opts, s.log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer closer()

	report, err := commands.NewSortCommand(pipeline, req.ParentID).Execute(c.Request.Context())
	if err != nil {
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
