package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mercato-core/config"
	"mercato-core/pkg/apperror"

	"github.com/google/uuid"
)

// HTTPVerifier implements ports.SellerVerifier against the identity
// collaborator's REST API.
type HTTPVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPVerifier creates a verifier client from config.
func NewHTTPVerifier(cfg config.VerifierConfig) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type verificationResponse struct {
	SellerID string `json:"seller_id"`
	Verified bool   `json:"verified"`
}

// IsSellerVerified asks the identity service whether the seller has
// completed KYC. An unknown seller reads as unverified, not as an error.
func (v *HTTPVerifier) IsSellerVerified(ctx context.Context, sellerID uuid.UUID) (bool, error) {
	url := v.baseURL + "/v1/sellers/" + sellerID.String() + "/verification"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("build verifier request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return false, apperror.ErrExternalDependency("seller verification", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, apperror.ErrExternalDependency("seller verification",
			fmt.Errorf("status %d: %s", resp.StatusCode, raw))
	}

	var body verificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, apperror.ErrExternalDependency("seller verification",
			fmt.Errorf("decode response: %w", err))
	}
	return body.Verified, nil
}

// StaticVerifier implements ports.SellerVerifier with a fixed answer. Used
// when no identity service is configured (local development).
type StaticVerifier struct {
	verified bool
}

// NewStaticVerifier creates a verifier that always answers verified.
func NewStaticVerifier(verified bool) *StaticVerifier {
	return &StaticVerifier{verified: verified}
}

// IsSellerVerified returns the configured answer.
func (v *StaticVerifier) IsSellerVerified(_ context.Context, _ uuid.UUID) (bool, error) {
	return v.verified, nil
}
