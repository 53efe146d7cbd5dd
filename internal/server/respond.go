package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fail writes an error response in the {"detail": "..."} shape clients
// of this API expect.
func fail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// failInternal logs the error and maps it to a 500 response.
func (s *Server) failInternal(c *gin.Context, err error) {
	s.log.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	fail(c, http.StatusInternalServerError, err.Error())
}
