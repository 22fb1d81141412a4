package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls int
}

func (c *countingRefresher) Refresh() { c.calls++ }

func TestRefreshCache(t *testing.T) {
	kpis := &countingRefresher{}
	trends := &countingRefresher{}

	req := httptest.NewRequest(http.MethodPost, "/v1/cache/refresh", nil)
	rec := httptest.NewRecorder()

	RefreshCache(kpis, trends).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, kpis.calls)
	assert.Equal(t, 1, trends.calls)
}

func TestRefreshCache_NoCachedServices(t *testing.T) {
	// Cache desabilitado por configuração: o endpoint continua respondendo
	req := httptest.NewRequest(http.MethodPost, "/v1/cache/refresh", nil)
	rec := httptest.NewRecorder()

	RefreshCache().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
