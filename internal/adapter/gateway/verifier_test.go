package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mercato-core/config"
	"mercato-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *HTTPVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPVerifier(config.VerifierConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: time.Second,
	})
}

func TestHTTPVerifier_Verified(t *testing.T) {
	sellerID := uuid.New()
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/sellers/"+sellerID.String()+"/verification", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"seller_id":"` + sellerID.String() + `","verified":true}`))
	})

	verified, err := v.IsSellerVerified(context.Background(), sellerID)
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestHTTPVerifier_UnknownSellerIsUnverified(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	verified, err := v.IsSellerVerified(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, verified)
}

func TestHTTPVerifier_ServerError(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := v.IsSellerVerified(context.Background(), uuid.New())
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "EXT_001", appErr.Code)
}

func TestStaticVerifier(t *testing.T) {
	verified, err := NewStaticVerifier(true).IsSellerVerified(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, verified)

	verified, err = NewStaticVerifier(false).IsSellerVerified(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, verified)
}
