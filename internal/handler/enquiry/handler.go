package enquiry

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbdtech/afc-portal-api/internal/handler"
	"github.com/rbdtech/afc-portal-api/internal/model"
	enquiryService "github.com/rbdtech/afc-portal-api/internal/service/enquiry"
)

type Handler struct {
	service *enquiryService.Service
}

func NewHandler(service *enquiryService.Service) *Handler {
	return &Handler{service: service}
}

// Submit is public: enquiries may come from anonymous visitors.
func (h *Handler) Submit(c *gin.Context) {
	var req model.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	enquiry, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": enquiry})
}

func (h *Handler) ListEnquiries(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		enquiries []*model.Enquiry
		err       error
	)
	if t := c.Query("type"); t != "" {
		enquiries, err = h.service.ListByType(ctx, model.EnquiryType(t))
	} else {
		enquiries, err = h.service.ListAll(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": enquiries})
}

func (h *Handler) Resolve(c *gin.Context) {
	var req model.ResolveEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	enquiry, err := h.service.Resolve(c.Request.Context(), c.Param("id"), req.Response)
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": enquiry})
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/enquiries", h.Submit)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	enquiries := r.Group("/enquiries")
	{
		enquiries.GET("", h.ListEnquiries)
		enquiries.POST("/:id/resolve", h.Resolve)
	}
}
