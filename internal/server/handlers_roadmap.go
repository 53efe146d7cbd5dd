package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/eduforge/internal/roadmap"
)

type roadmapRequest struct {
	Topic            string `json:"topic" binding:"required"`
	ComplexityLevel  string `json:"complexity_level"`
	Duration         string `json:"duration"`
	IncludeResources *bool  `json:"include_resources"`
}

func (s *Server) handleRoadmap(c *gin.Context) {
	req := roadmapRequest{
		ComplexityLevel: "intermediate",
		Duration:        "Recommend a duration",
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	includeResources := true
	if req.IncludeResources != nil {
		includeResources = *req.IncludeResources
	}

	out, err := s.svc.Roadmap.Generate(c.Request.Context(), roadmap.Options{
		Topic:            req.Topic,
		ComplexityLevel:  req.ComplexityLevel,
		Duration:         req.Duration,
		IncludeResources: includeResources,
	})
	if err != nil {
		s.failInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roadmap": out})
}
