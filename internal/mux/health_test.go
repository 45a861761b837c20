package mux

import (
	"net/http/httptest"
	"padeltour-server/pkg/model"
	"testing"

	"github.com/bmizerany/assert"
)

func TestHealthHandler(t *testing.T) {
	setupJWT()
	m := NewMux("v1.2.3", model.NewMemoryStore())
	defer m.Close()

	ts := httptest.NewServer(m)
	defer ts.Close()

	var expects healthResponse
	assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v1.2.3", expects.Version)
}
