package mux

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"padeltour-server/internal/config"
	"padeltour-server/internal/jwt"
	"padeltour-server/internal/util"
	"padeltour-server/pkg/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

var cbg = context.Background()

const adminEmail = "referee@example.com"

func Test_remoteAddr(t *testing.T) {
	r := &http.Request{RemoteAddr: "127.0.0.1:5000"}
	assert.Equal(t, "127.0.0.1", remoteAddr(r))

	r.RemoteAddr = "[::1]:5000"
	assert.Equal(t, "[::1]", remoteAddr(r))
}

func Test_parsePaginationOptions(t *testing.T) {
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/"+queryString, nil)
		return req
	}

	start, rows, err := parsePaginationOptions(req(""))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), start)
	assert.Equal(t, defaultRows, rows)

	start, rows, err = parsePaginationOptions(req("?start=10&rows=25"))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), start)
	assert.Equal(t, 25, rows)

	start, rows, err = parsePaginationOptions(req("?start=-1&rows=25"))
	assert.EqualError(t, err, "start cannot be less than zero")
	assert.Equal(t, int64(0), start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req("?start=0&rows=0"))
	assert.EqualError(t, err, "rows must be greater than zero")
	assert.Equal(t, int64(0), start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req(fmt.Sprintf("?start=0&rows=%d", maxRows+1)))
	assert.EqualError(t, err, fmt.Sprintf("rows cannot be greater than %d", maxRows))
	assert.Equal(t, int64(0), start)
	assert.Equal(t, 0, rows)
}

func Test_writeModelError(t *testing.T) {
	tests := []struct {
		err        error
		statusCode int
		message    string
	}{
		{model.UserError("bad score"), http.StatusBadRequest, "bad score"},
		{fmt.Errorf("wrapped: %w", model.ErrRoundNotComplete), http.StatusBadRequest, "wrapped: every court must be completed before the next round"},
		{model.ErrTournamentNotFound, http.StatusNotFound, "Not Found"},
		{context.Canceled, http.StatusServiceUnavailable, "Service Unavailable"},
		{errors.New("database is down"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, test := range tests {
		w := httptest.NewRecorder()
		writeModelError(w, test.err)
		assert.Equal(t, test.statusCode, w.Code, test.err.Error())
		assert.Contains(t, w.Body.String(), test.message)
	}
}

func setupJWT() {
	util.SetEnv("PADEL_CONFIG_FILE", "testdata/missing.yaml")
	util.SetEnv("PADEL_STORAGE", config.StorageMemory)
	util.SetEnv("PADEL_JWT_PUBLIC_KEY", "../jwt/testdata/public.pem")
	util.SetEnv("PADEL_JWT_PRIVATE_KEY", "../jwt/testdata/private.key")
	util.SetEnv("PADEL_ADMINS", adminEmail)
	if err := config.Load(); err != nil {
		panic(err)
	}

	jwt.LoadKeys()
}

func adminToken() string {
	j, _ := jwt.Sign(adminEmail)
	return j
}

func userToken() string {
	j, _ := jwt.Sign(util.RandomEmail())
	return j
}

// newServer returns a test server backed by an in-memory store
func newServer(t *testing.T) (*httptest.Server, *Mux, model.Store) {
	t.Helper()
	setupJWT()

	store := model.NewMemoryStore()
	m := NewMux("", store)
	ts := httptest.NewServer(m)
	t.Cleanup(func() {
		ts.Close()
		m.Close()
	})

	return ts, m, store
}
