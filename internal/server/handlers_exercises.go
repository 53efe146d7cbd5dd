package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/eduforge/internal/exercises"
)

type exercisesForm struct {
	Count      int    `form:"exercises_count,default=5"`
	Difficulty string `form:"exercises_difficulty,default=medium"`
	Type       string `form:"exercises_types,default=multiple_choice"`
}

func (s *Server) handleExercises(c *gin.Context) {
	var form exercisesForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if !exercises.Type(form.Type).Valid() {
		fail(c, http.StatusBadRequest, "unsupported exercise type: "+form.Type)
		return
	}

	content, err := readUploads(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.generateExercises(c, exercises.Request{
		Content:    content,
		Count:      form.Count,
		Difficulty: form.Difficulty,
		Type:       exercises.Type(form.Type),
	})
}

type exercisesByTopicRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Count      int    `json:"exercises_count"`
	Difficulty string `json:"exercises_difficulty"`
	Type       string `json:"exercises_types"`
}

func (s *Server) handleExercisesByTopic(c *gin.Context) {
	req := exercisesByTopicRequest{
		Count:      5,
		Difficulty: "medium",
		Type:       string(exercises.TypeMultipleChoice),
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if !exercises.Type(req.Type).Valid() {
		fail(c, http.StatusBadRequest, "unsupported exercise type: "+req.Type)
		return
	}

	s.generateExercises(c, exercises.Request{
		Content:    req.Topic,
		Count:      req.Count,
		Difficulty: req.Difficulty,
		Type:       exercises.Type(req.Type),
	})
}

func (s *Server) generateExercises(c *gin.Context, req exercises.Request) {
	set, err := s.svc.Exercises.Generate(c.Request.Context(), req)
	if err != nil {
		s.failInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": set})
}
