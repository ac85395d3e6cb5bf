package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type classifyRequest struct {
	Text string `json:"text"`
}

func (s *Server) ClassifySentiment(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	c.JSON(http.StatusOK, s.classifier.Classify(req.Text))
}
