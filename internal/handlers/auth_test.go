package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_RelaysSupabaseResponse(t *testing.T) {
	fake, url := newFakeSupabase(t, http.StatusOK, `{"id":"u-1","email":"trader@example.com"}`)
	r := newGatewayRouter(url)

	w := doRequest(r, http.MethodPost, "/register", `{"email":"trader@example.com","password":"s3cret"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u-1","email":"trader@example.com"}`, w.Body.String())

	got := fake.lastRequest(t)
	assert.Equal(t, "/auth/v1/signup", got.Path)
	assert.Equal(t, "service-key", got.Header.Get("apikey"))
	assert.JSONEq(t, `{"email":"trader@example.com","password":"s3cret"}`, string(got.Body))
}

func TestRegister_MissingPassword(t *testing.T) {
	fake, url := newFakeSupabase(t, http.StatusOK, "{}")
	r := newGatewayRouter(url)

	w := doRequest(r, http.MethodPost, "/register", `{"email":"trader@example.com"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request")
	assert.Equal(t, 0, fake.hits())
}

func TestRegister_DuplicateRelayedVerbatim(t *testing.T) {
	_, url := newFakeSupabase(t, http.StatusUnprocessableEntity, `{"msg":"User already registered"}`)
	r := newGatewayRouter(url)

	w := doRequest(r, http.MethodPost, "/register", `{"email":"trader@example.com","password":"s3cret"}`, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"msg":"User already registered"}`, w.Body.String())
}

func TestLogin_ForwardsPasswordGrant(t *testing.T) {
	fake, url := newFakeSupabase(t, http.StatusOK, `{"access_token":"tok","refresh_token":"ref"}`)
	r := newGatewayRouter(url)

	w := doRequest(r, http.MethodPost, "/login", `{"email":"trader@example.com","password":"s3cret"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"tok","refresh_token":"ref"}`, w.Body.String())

	got := fake.lastRequest(t)
	assert.Equal(t, "/auth/v1/token", got.Path)
	assert.Equal(t, "grant_type=password", got.Query)
}

func TestLogin_BadCredentialsRelayed(t *testing.T) {
	_, url := newFakeSupabase(t, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`)
	r := newGatewayRouter(url)

	w := doRequest(r, http.MethodPost, "/login", `{"email":"trader@example.com","password":"nope"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`, w.Body.String())
}

func TestLogin_UpstreamUnreachable(t *testing.T) {
	r := newGatewayRouter("http://127.0.0.1:1")

	w := doRequest(r, http.MethodPost, "/login", `{"email":"a@b.c","password":"x"}`, "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "upstream unreachable")
}

func TestMe_ReturnsTokenSubject(t *testing.T) {
	fake, url := newFakeSupabase(t, http.StatusOK, "{}")
	r := newGatewayRouter(url)

	w := doRequest(r, http.MethodGet, "/me", "", mintToken(t, "user-42"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-42"}`, w.Body.String())
	assert.Equal(t, 0, fake.hits())
}

func TestProtectedRoutes_RejectedBeforeUpstream(t *testing.T) {
	fake, url := newFakeSupabase(t, http.StatusOK, "[]")
	r := newGatewayRouter(url)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/me", ""},
		{http.MethodPost, "/decision", `{"action":"buy","reason":"cheap","price":100,"volume":1}`},
		{http.MethodGet, "/decisions", ""},
		{http.MethodPost, "/upload", `{"filename":"f.json","raw_data":{}}`},
		{http.MethodGet, "/uploads", ""},
	}

	for _, route := range routes {
		w := doRequest(r, route.method, route.path, route.body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)

		w = doRequest(r, route.method, route.path, route.body, "garbage-token")
		assert.Equal(t, http.StatusForbidden, w.Code, route.path)
	}

	assert.Equal(t, 0, fake.hits())
}
