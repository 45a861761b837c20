package mux

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_authRouter(t *testing.T) {
	ts, m, _ := newServer(t)

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	assertGet(t, ts, "/test", &errObj, 401, "not-a-token")

	token := adminToken()

	// test using auth header
	var str string
	resp := assertGetWithResp(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "OK", str)
	assert.Equal(t, adminEmail, resp.Header.Get("Padeltour-Admin"))

	// test using query parameter
	resp = assertGetWithResp(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "OK", str)
	assert.Equal(t, adminEmail, resp.Header.Get("Padeltour-Admin"))
}

func Test_adminRouter(t *testing.T) {
	ts, m, _ := newServer(t)

	m.adminRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 403, userToken())
	assert.Equal(t, "Forbidden", errObj.Message)

	var str string
	assertGet(t, ts, "/test", &str, 200, adminToken())
	assert.Equal(t, "OK", str)
}
