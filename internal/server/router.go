package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) registerRoutes() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	s.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the EduForge API"})
	})

	api := s.engine.Group("/api")
	{
		api.POST("/summarize", s.handleSummarize)

		api.POST("/flashcard", s.handleFlashcards)
		api.POST("/flashcard/by_topic", s.handleFlashcardsByTopic)

		api.POST("/generate-exercises", s.handleExercises)
		api.POST("/generate-exercises/by_topic", s.handleExercisesByTopic)

		api.POST("/games", s.handleGames)

		api.POST("/roadmap", s.handleRoadmap)

		lp := api.Group("/learning-path")
		{
			lp.POST("/generate", s.handleLearningPath)
			lp.GET("/health", s.handleLearningPathHealth)
		}
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
