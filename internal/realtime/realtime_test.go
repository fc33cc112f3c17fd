package realtime

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_NoAppKeyDisables(t *testing.T) {
	client, ok := New(bootstrap.BrokerConfig{}, zap.NewNop())
	assert.False(t, ok)
	assert.Nil(t, client)
}

func TestNew_BuildsDialURL(t *testing.T) {
	client, ok := New(bootstrap.BrokerConfig{
		AppKey: "key-1",
		Host:   "broker.local",
		Port:   "6001",
		Scheme: "wss",
	}, zap.NewNop())
	assert.True(t, ok)
	assert.Equal(t, "wss://broker.local:6001/app/key-1", client.URL())
}

func TestNew_UnknownSchemeFallsBackToWS(t *testing.T) {
	client, ok := New(bootstrap.BrokerConfig{
		AppKey: "key-1",
		Host:   "broker.local",
		Port:   "6001",
		Scheme: "http",
	}, zap.NewNop())
	assert.True(t, ok)
	assert.Equal(t, "ws://broker.local:6001/app/key-1", client.URL())
}

func TestAuthorize_SuccessInvokesCallbackWithPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, authPath, r.URL.Path)
		assert.Equal(t, "csrf-123", r.Header.Get("X-CSRF-TOKEN"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"auth":"key:sig"}`))
	}))
	defer srv.Close()

	a := NewAuthorizer(srv.URL, "csrf-123", zap.NewNop())

	var gotErrored bool
	var gotPayload map[string]any
	calls := 0
	a.Authorize("socket-1", "private-orders", func(errored bool, payload map[string]any) {
		calls++
		gotErrored = errored
		gotPayload = payload
	})

	assert.Equal(t, 1, calls)
	assert.False(t, gotErrored)
	assert.Equal(t, "key:sig", gotPayload["auth"])
}

func TestAuthorize_ServerErrorDenies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewAuthorizer(srv.URL, "csrf-123", zap.NewNop())

	calls := 0
	a.Authorize("socket-1", "private-orders", func(errored bool, payload map[string]any) {
		calls++
		assert.True(t, errored)
		assert.Nil(t, payload)
	})
	assert.Equal(t, 1, calls)
}

func TestAuthorize_GarbageBodyDenies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := NewAuthorizer(srv.URL, "csrf-123", zap.NewNop())

	calls := 0
	a.Authorize("socket-1", "private-orders", func(errored bool, payload map[string]any) {
		calls++
		assert.True(t, errored)
	})
	assert.Equal(t, 1, calls)
}

func TestAuthorize_NetworkFailureDenies(t *testing.T) {
	a := NewAuthorizer("http://127.0.0.1:1", "csrf-123", zap.NewNop())

	calls := 0
	a.Authorize("socket-1", "private-orders", func(errored bool, payload map[string]any) {
		calls++
		assert.True(t, errored)
	})
	assert.Equal(t, 1, calls)
}

func TestSign_IsDeterministic(t *testing.T) {
	sig1 := Sign("secret", "socket-1", "private-orders")
	sig2 := Sign("secret", "socket-1", "private-orders")
	other := Sign("secret", "socket-2", "private-orders")

	assert.Equal(t, sig1, sig2)
	assert.NotEqual(t, sig1, other)
	assert.Len(t, sig1, 64)
}
