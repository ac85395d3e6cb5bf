package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	twindomain "github.com/wellbeamhq/pulse/internal/twin/domain"
)

func (s *Server) GetDigitalTwinState(c *gin.Context) {
	employeeID := strings.TrimSpace(c.Param("id"))

	resp, err := s.twinSvc.State(c.Request.Context(), twindomain.StateRequest{
		EmployeeID: employeeID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
