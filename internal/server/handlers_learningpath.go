package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/eduforge/internal/learningpath"
)

type learningPathForm struct {
	Difficulty          string `form:"difficulty,default=intermediate"`
	TotalDuration       string `form:"total_duration,default=4 weeks"`
	ModulesCount        int    `form:"modules_count,default=2" binding:"min=1,max=10"`
	SessionsPerModule   int    `form:"sessions_per_module,default=2" binding:"min=1,max=8"`
	TopicsPerSession    int    `form:"topics_per_session,default=2" binding:"min=1,max=5"`
	FlashcardsPerTopic  int    `form:"flashcards_per_topic,default=3" binding:"min=2,max=10"`
	QuestionsPerTopic   int    `form:"questions_per_topic,default=3" binding:"min=2,max=10"`
	IncludeTheory       bool   `form:"include_theory,default=true"`
	Language            string `form:"language,default=Spanish"`
	AutoStructure       bool   `form:"auto_structure,default=false"`
	LearningApproach    string `form:"learning_approach,default=balanced"`
	LanguageRegister    string `form:"language_register,default=neutral"`
	DetailLevel         string `form:"detail_level,default=intermediate"`
	GenerateFullContent bool   `form:"generate_full_content,default=false"`
}

func (s *Server) handleLearningPath(c *gin.Context) {
	var form learningPathForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	content, err := readUploads(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := s.svc.LearningPath.Generate(c.Request.Context(), learningpath.PathRequest{
		Content:             content,
		Difficulty:          form.Difficulty,
		TotalDuration:       form.TotalDuration,
		ModulesCount:        form.ModulesCount,
		SessionsPerModule:   form.SessionsPerModule,
		TopicsPerSession:    form.TopicsPerSession,
		FlashcardsPerTopic:  form.FlashcardsPerTopic,
		QuestionsPerTopic:   form.QuestionsPerTopic,
		Language:            form.Language,
		AutoStructure:       form.AutoStructure,
		LearningApproach:    form.LearningApproach,
		LanguageRegister:    form.LanguageRegister,
		DetailLevel:         form.DetailLevel,
		GenerateFullContent: form.GenerateFullContent,
	})
	if err != nil {
		s.failInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"learning_path": doc})
}

func (s *Server) handleLearningPathHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "learning-path"})
}
