package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func status(db Pinger, path string) int {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(db).RegisterRoutes(engine)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code
}

func TestHealth(t *testing.T) {
	assert.Equal(t, http.StatusOK, status(pinger{}, "/health/live"))
	assert.Equal(t, http.StatusOK, status(pinger{}, "/health/ready"))
	assert.Equal(t, http.StatusOK, status(pinger{err: errors.New("down")}, "/health/live"))
	assert.Equal(t, http.StatusServiceUnavailable, status(pinger{err: errors.New("down")}, "/health/ready"))
}
