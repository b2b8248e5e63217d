package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vitrineimob/vitrine-api/internal/services"
	"go.uber.org/zap"
)

func feedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/v1/feeds/:portal", GetFeed)
	return router
}

func TestGetFeed_MissingAgentID(t *testing.T) {
	router := feedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/feeds/zap", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "agentId")
}

func TestGetFeed_UnknownPortal(t *testing.T) {
	services.FeedServiceInstance = services.NewFeedService(nil, nil, zap.NewNop())
	t.Cleanup(func() { services.FeedServiceInstance = nil })

	router := feedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/feeds/olx?agentId=ag-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "olx")
}

func TestGetFeed_ServiceNotInitialized(t *testing.T) {
	services.FeedServiceInstance = nil

	router := feedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/feeds/zap?agentId=ag-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
