// file: services/orchestrator_client_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPResetOrchestrator_SendsCallablePayload(t *testing.T) {
	var got map[string]map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"result":{"success":true}}`))
	}))
	defer server.Close()

	orch := NewHTTPResetOrchestrator(server.URL, server.Client())
	require.NoError(t, orch.Reset(context.Background(), "current_event_id"))
	assert.Equal(t, "current_event_id", got["data"]["eventId"])
}

func TestHTTPResetOrchestrator_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"status":"INTERNAL","message":"archive step failed"}}`))
	}))
	defer server.Close()

	err := NewHTTPResetOrchestrator(server.URL, server.Client()).Reset(context.Background(), "evt")
	assert.ErrorIs(t, err, ErrOrchestratorFailed)
	assert.Contains(t, err.Error(), "archive step failed")
}

func TestHTTPResetOrchestrator_Non2xxWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	err := NewHTTPResetOrchestrator(server.URL, server.Client()).Reset(context.Background(), "evt")
	assert.ErrorIs(t, err, ErrOrchestratorFailed)
	assert.Contains(t, err.Error(), "403")
}

func TestHTTPResetOrchestrator_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	err := NewHTTPResetOrchestrator(url, http.DefaultClient).Reset(context.Background(), "evt")
	assert.ErrorIs(t, err, ErrOrchestratorFailed)
}
