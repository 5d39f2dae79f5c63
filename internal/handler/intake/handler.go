package intake

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbdtech/afc-portal-api/internal/model"
	intakeService "github.com/rbdtech/afc-portal-api/internal/service/intake"
)

type Handler struct {
	service *intakeService.Service
}

func NewHandler(service *intakeService.Service) *Handler {
	return &Handler{service: service}
}

// Submit acknowledges the form immediately; webhook delivery happens in
// the background and its outcome is not reported to the submitter.
func (h *Handler) Submit(c *gin.Context) {
	var form model.IntakeSubmission
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	h.service.Submit(c.Request.Context(), &form)

	c.JSON(http.StatusAccepted, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/intake", h.Submit)
}
