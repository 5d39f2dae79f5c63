package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbdtech/afc-portal-api/internal/handler"
	"github.com/rbdtech/afc-portal-api/internal/model"
	appointmentService "github.com/rbdtech/afc-portal-api/internal/service/appointment"
)

type Handler struct {
	service *appointmentService.Service
}

func NewHandler(service *appointmentService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	appointment, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": appointment})
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appointment, err := h.service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointment})
}

// ListAppointments serves the portal views: ?patient_id= and
// ?doctor_id= scope the list, ?today=true narrows to the store's
// current calendar date.
func (h *Handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		appointments []*model.Appointment
		err          error
	)
	switch {
	case c.Query("today") == "true":
		appointments, err = h.service.ListToday(ctx)
	case c.Query("patient_id") != "":
		appointments, err = h.service.ListByPatient(ctx, c.Query("patient_id"))
	case c.Query("doctor_id") != "":
		appointments, err = h.service.ListByDoctor(ctx, c.Query("doctor_id"))
	default:
		appointments, err = h.service.ListAll(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointments})
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	appointment, err := h.service.UpdateAppointment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointment})
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.service.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) GetActiveAppointment(c *gin.Context) {
	appointment, err := h.service.GetActiveAppointment(c.Request.Context(), c.Query("doctor_id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointment})
}

func (h *Handler) StartSession(c *gin.Context) {
	appointment, err := h.service.StartSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointment})
}

func (h *Handler) CloseCase(c *gin.Context) {
	appointment, err := h.service.CloseCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointment})
}

func (h *Handler) GetDetails(c *gin.Context) {
	details, err := h.service.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": details})
}

func (h *Handler) UpdateDetails(c *gin.Context) {
	var req model.UpdateAppointmentDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	details, err := h.service.UpdateDetails(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": details})
}

func (h *Handler) RequestReschedule(c *gin.Context) {
	var req model.CreateRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	req.AppointmentID = c.Param("id")

	request, err := h.service.RequestReschedule(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": request})
}

func (h *Handler) ListReschedules(c *gin.Context) {
	requests, err := h.service.ListRescheduleRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": requests})
}

func (h *Handler) ApproveReschedule(c *gin.Context) {
	request, err := h.service.ApproveReschedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": request})
}

func (h *Handler) RejectReschedule(c *gin.Context) {
	request, err := h.service.RejectReschedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.ErrorStatus(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": request})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/active", h.GetActiveAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
		appointments.POST("/:id/start", h.StartSession)
		appointments.POST("/:id/close", h.CloseCase)
		appointments.GET("/:id/details", h.GetDetails)
		appointments.PUT("/:id/details", h.UpdateDetails)
		appointments.POST("/:id/reschedule", h.RequestReschedule)
	}

	reschedules := r.Group("/reschedule-requests")
	{
		reschedules.GET("", h.ListReschedules)
		reschedules.POST("/:id/approve", h.ApproveReschedule)
		reschedules.POST("/:id/reject", h.RejectReschedule)
	}
}
