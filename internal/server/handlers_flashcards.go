package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/eduforge/internal/flashcards"
)

type flashcardForm struct {
	Count      int    `form:"flashcards_count,default=5"`
	Difficulty string `form:"difficulty_level,default=medium"`
	FocusArea  string `form:"focus_area,default=key concepts"`
}

func (s *Server) handleFlashcards(c *gin.Context) {
	var form flashcardForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	content, err := readUploads(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.generateFlashcards(c, flashcards.Request{
		Content:    content,
		Count:      form.Count,
		Difficulty: form.Difficulty,
		FocusArea:  form.FocusArea,
	})
}

type flashcardByTopicRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Count      int    `json:"flashcards_count"`
	Difficulty string `json:"difficulty_level"`
	FocusArea  string `json:"focus_area"`
}

func (s *Server) handleFlashcardsByTopic(c *gin.Context) {
	// Pre-populate defaults; absent JSON fields keep them.
	req := flashcardByTopicRequest{
		Count:      5,
		Difficulty: "medium",
		FocusArea:  "key concepts",
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.generateFlashcards(c, flashcards.Request{
		Content:    req.Topic,
		Count:      req.Count,
		Difficulty: req.Difficulty,
		FocusArea:  req.FocusArea,
	})
}

func (s *Server) generateFlashcards(c *gin.Context, req flashcards.Request) {
	cards, err := s.svc.Flashcards.Generate(c.Request.Context(), req)
	if err != nil {
		s.failInternal(c, err)
		return
	}
	if cards == nil {
		cards = []flashcards.FlashCard{}
	}
	c.JSON(http.StatusOK, gin.H{"flashcards": cards})
}
