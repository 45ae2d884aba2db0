package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-authform/internal/server"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/orchestrator"
	"github.com/goliatone/go-authform/pkg/testsupport"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(server.New(orchestrator.New(), nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url string, body []byte) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func envelope(t *testing.T, fixture string, extra map[string]any) []byte {
	t.Helper()
	body := map[string]any{"transaction": json.RawMessage(testsupport.TransactionJSON(t, fixture))}
	for k, v := range extra {
		body[k] = v
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return payload
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenerateForm(t *testing.T) {
	srv := newTestServer(t)
	resp, out := post(t, srv.URL+"/v1/forms", envelope(t, "identify", map[string]any{
		"config": map[string]any{"username": "alice@example.com"},
	}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(server.ErrorCodeHeader))

	data := out["data"].(map[string]any)
	assert.Equal(t, "alice@example.com", data["identifier"])

	ui := out["uischema"].(map[string]any)
	elements := ui["elements"].([]any)
	first := elements[0].(map[string]any)
	assert.Equal(t, "Title", first["type"])
	assert.Equal(t, []any{"identifier", "credentials.passcode"}, out["fieldsToValidate"])
}

func TestGenerateFormUnsupported(t *testing.T) {
	srv := newTestServer(t)
	resp, out := post(t, srv.URL+"/v1/forms", []byte(`{"transaction":{}}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.ErrCodeInvalidTransaction, resp.Header.Get(server.ErrorCodeHeader))
	ui := out["uischema"].(map[string]any)
	box := ui["elements"].([]any)[0].(map[string]any)
	assert.Equal(t, "InfoBox", box["type"])
}

func TestGenerateFormBadJSON(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/v1/forms", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidateForm(t *testing.T) {
	srv := newTestServer(t)

	t.Run("blank fields", func(t *testing.T) {
		resp, out := post(t, srv.URL+"/v1/forms/validate", envelope(t, "identify", map[string]any{
			"data": map[string]any{"identifier": ""},
		}))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, out["valid"])
		errs := out["errors"].(map[string]any)
		assert.Contains(t, errs, "identifier")
		assert.Contains(t, errs, "credentials.passcode")
		assert.NotContains(t, out, "submit")
	})

	t.Run("password mismatch", func(t *testing.T) {
		_, out := post(t, srv.URL+"/v1/forms/validate", envelope(t, "enroll-password", map[string]any{
			"data": map[string]any{
				"credentials.passcode":        "Abcdefg1",
				"credentials.confirmPassword": "Abcdefg2",
			},
		}))
		assert.Equal(t, false, out["valid"])
		errs := out["errors"].(map[string]any)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs, "credentials.confirmPassword")
	})

	t.Run("valid data carries the submit request", func(t *testing.T) {
		_, out := post(t, srv.URL+"/v1/forms/validate", envelope(t, "identify", map[string]any{
			"data": map[string]any{"identifier": "alice", "credentials.passcode": "secret"},
		}))
		assert.Equal(t, true, out["valid"])
		submit := out["submit"].(map[string]any)
		assert.Equal(t, "identify", submit["step"])
		params := submit["params"].(map[string]any)
		assert.Equal(t, "alice", params["identifier"])
	})

	t.Run("single field", func(t *testing.T) {
		_, out := post(t, srv.URL+"/v1/forms/validate", envelope(t, "identify", map[string]any{
			"data":  map[string]any{"identifier": ""},
			"field": "identifier",
		}))
		assert.Equal(t, false, out["valid"])
		errs := out["errors"].(map[string]any)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs, "identifier")

		_, out = post(t, srv.URL+"/v1/forms/validate", envelope(t, "identify", map[string]any{
			"data":  map[string]any{"identifier": "alice"},
			"field": "identifier",
		}))
		assert.Equal(t, true, out["valid"])
		assert.NotContains(t, out, "submit")
	})
}
