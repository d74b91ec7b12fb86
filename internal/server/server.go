package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/graphweave/graphweave/internal/pipeline"
	"github.com/graphweave/graphweave/internal/scene"
	"github.com/graphweave/graphweave/internal/session"
)

type Server struct {
	Generator *pipeline.Generator
	Session   *session.Session
	Log       *zap.Logger
}

func NewServer(gen *pipeline.Generator, sess *session.Session, log *zap.Logger) *Server {
	return &Server{
		Generator: gen,
		Session:   sess,
		Log:       log,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(Cors())

	r.GET("/health", s.Health)

	api := r.Group("/api")
	api.POST("/generate", s.Generate)
	api.POST("/reset", s.Reset)
	api.GET("/graph", s.Graph)
	api.GET("/scene", s.Scene)
	api.POST("/select", s.Select)
	api.GET("/stats", s.GetStats)

	registerViewer(r)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type GenerateRequest struct {
	Question string `json:"question"`
}

type GenerateResponse struct {
	Question  string         `json:"question"`
	Answer    string         `json:"answer"`
	NodeCount int            `json:"node_count"`
	EdgeCount int            `json:"edge_count"`
	ByType    map[string]int `json:"by_type"`
}

// Generate runs the full pipeline and atomically replaces the session
// graph on success. On any failure the prior graph is left untouched.
func (s *Server) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		// Rejected before any upstream call is made.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a question"})
		return
	}

	result, err := s.Generator.Generate(c.Request.Context(), question)
	if err != nil {
		s.Log.Error("generation failed", zap.String("question", question), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	stats := s.Session.ApplyResult(result)

	c.JSON(http.StatusOK, GenerateResponse{
		Question:  result.Question,
		Answer:    result.Answer,
		NodeCount: stats.NodeCount,
		EdgeCount: stats.EdgeCount,
		ByType:    stats.ByType,
	})
}

func statusFor(err error) int {
	var cfgErr *pipeline.ConfigurationError
	if errors.As(err, &cfgErr) {
		return http.StatusInternalServerError
	}
	var upErr *pipeline.UpstreamError
	if errors.As(err, &upErr) {
		return http.StatusBadGateway
	}
	var parseErr *pipeline.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) Reset(c *gin.Context) {
	s.Session.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (s *Server) Graph(c *gin.Context) {
	snap := s.Session.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"question": snap.Question,
		"answer":   snap.Answer,
		"nodes":    snap.Nodes,
		"edges":    snap.Edges,
		"selected": snap.Selected,
		"stats":    s.Session.Stats(),
	})
}

// Scene serves the render-ready description the 3D viewer consumes.
// Dangling edges are dropped here, with the count reported.
func (s *Server) Scene(c *gin.Context) {
	snap := s.Session.Snapshot()
	c.JSON(http.StatusOK, scene.Build(snap.Nodes, snap.Edges, snap.Selected))
}

type SelectRequest struct {
	NodeID string `json:"node_id"`
}

// Select toggles the clicked node and returns the partitioned relation
// view. Selecting an id with no edges (or an unknown id) is still a valid
// selection with empty partitions.
func (s *Server) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, s.Session.Toggle(req.NodeID))
}

func (s *Server) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.Session.Stats())
}
