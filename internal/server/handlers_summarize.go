package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/eduforge/internal/summarize"
)

type summarizeForm struct {
	Character          string `form:"character,default=review"`
	LanguageRegister   string `form:"language_register,default=formal"`
	Language           string `form:"language,default=English"`
	Extension          string `form:"extension,default=medium"`
	IncludeReferences  bool   `form:"include_references,default=false"`
	IncludeExamples    bool   `form:"include_examples,default=false"`
	IncludeConclusions bool   `form:"include_conclusions,default=false"`
}

func (s *Server) handleSummarize(c *gin.Context) {
	var form summarizeForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	content, err := readUploads(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.svc.Summarize.Generate(c.Request.Context(), content, summarize.Options{
		Character:          form.Character,
		LanguageRegister:   form.LanguageRegister,
		Language:           form.Language,
		Extension:          form.Extension,
		IncludeReferences:  form.IncludeReferences,
		IncludeExamples:    form.IncludeExamples,
		IncludeConclusions: form.IncludeConclusions,
	})
	if err != nil {
		s.failInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
