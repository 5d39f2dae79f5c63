package appointment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbdtech/afc-portal-api/internal/repository/memstore"
	appointmentService "github.com/rbdtech/afc-portal-api/internal/service/appointment"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := memstore.NewSeeded()
	svc := appointmentService.NewService(store, store)

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

type envelope struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	engine := newTestRouter()

	w, env := doJSON(t, engine, http.MethodPost, "/api/v1/appointments", map[string]interface{}{
		"patient_id": "pat1",
		"doctor_id":  "doc2",
		"type":       "Consultation",
		"date":       "2024-02-01",
		"time":       "2:00 PM",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.Data["id"])
	assert.Equal(t, "pending", env.Data["status"])
	assert.Equal(t, "upcoming", env.Data["category"])
}

func TestCreateAppointmentValidation(t *testing.T) {
	engine := newTestRouter()

	// Missing required doctor_id.
	w, env := doJSON(t, engine, http.MethodPost, "/api/v1/appointments", map[string]interface{}{
		"patient_id": "pat1",
		"type":       "Consultation",
		"date":       "2024-02-01",
		"time":       "2:00 PM",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", env.Status)
	assert.NotEmpty(t, env.Message)
}

func TestGetAppointmentNotFound(t *testing.T) {
	engine := newTestRouter()

	w, env := doJSON(t, engine, http.MethodGet, "/api/v1/appointments/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)
}

func TestStartAndCloseSessionEndpoints(t *testing.T) {
	engine := newTestRouter()

	w, env := doJSON(t, engine, http.MethodPost, "/api/v1/appointments/apt1/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active", env.Data["status"])
	assert.Equal(t, true, env.Data["is_active_with_doctor"])

	w, env = doJSON(t, engine, http.MethodGet, "/api/v1/appointments/active?doctor_id=doc1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "apt1", env.Data["id"])

	w, env = doJSON(t, engine, http.MethodPost, "/api/v1/appointments/apt1/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", env.Data["status"])
	assert.Equal(t, false, env.Data["is_active_with_doctor"])

	w, _ = doJSON(t, engine, http.MethodGet, "/api/v1/appointments/active?doctor_id=doc1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRescheduleEndpoints(t *testing.T) {
	engine := newTestRouter()

	w, env := doJSON(t, engine, http.MethodPost, "/api/v1/appointments/apt1/reschedule", map[string]interface{}{
		"new_date": "2024-01-25",
		"new_time": "3:00 PM",
		"reason":   "Caregiver unavailable",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	requestID, _ := env.Data["id"].(string)
	require.NotEmpty(t, requestID)

	w, env = doJSON(t, engine, http.MethodGet, "/api/v1/appointments/apt1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reschedule_pending", env.Data["status"])

	w, env = doJSON(t, engine, http.MethodPost, "/api/v1/reschedule-requests/"+requestID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "approved", env.Data["status"])

	w, env = doJSON(t, engine, http.MethodGet, "/api/v1/appointments/apt1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rescheduled", env.Data["status"])
	assert.Equal(t, "2024-01-25", env.Data["date"])
}

func TestUpdateDetailsEndpoint(t *testing.T) {
	engine := newTestRouter()

	w, env := doJSON(t, engine, http.MethodPut, "/api/v1/appointments/apt1/details", map[string]interface{}{
		"medical_notes": "BP stable at 128/82.",
		"diagnosis":     "Controlled hypertension",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "apt1", env.Data["appointment_id"])
	assert.Equal(t, "Controlled hypertension", env.Data["diagnosis"])

	w, env = doJSON(t, engine, http.MethodGet, "/api/v1/appointments/apt1/details", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BP stable at 128/82.", env.Data["medical_notes"])
}
