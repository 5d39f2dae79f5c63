package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeoutWritesDeadlineResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Timeout(TimeoutConfig{Duration: 50 * time.Millisecond}))

	finished := make(chan struct{})
	engine.GET("/slow", func(c *gin.Context) {
		time.Sleep(200 * time.Millisecond)
		// This write lands after the deadline response and must be
		// dropped rather than corrupt the body.
		c.JSON(http.StatusOK, gin.H{"status": "success"})
		close(finished)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"request timeout"}`, w.Body.String())

	<-finished
	assert.JSONEq(t, `{"status":"error","message":"request timeout"}`, w.Body.String())
}

func TestTimeoutPassesFastRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Timeout(TimeoutConfig{Duration: time.Second}))
	engine.GET("/fast", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success")
}
