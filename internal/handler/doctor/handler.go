package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbdtech/afc-portal-api/internal/handler"
	"github.com/rbdtech/afc-portal-api/internal/model"
	doctorService "github.com/rbdtech/afc-portal-api/internal/service/doctor"
)

type Handler struct {
	service *doctorService.Service
}

func NewHandler(service *doctorService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	doctor, err := h.service.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": doctor})
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.service.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doctor})
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doctors})
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	doctor, err := h.service.UpdateDoctor(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doctor})
}

func (h *Handler) GetAvailability(c *gin.Context) {
	availability, err := h.service.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": availability})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointments})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("", h.CreateDoctor)
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.GET("/:id/availability", h.GetAvailability)
		doctors.GET("/:id/appointments", h.ListAppointments)
	}
}
