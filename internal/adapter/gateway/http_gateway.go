package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mercato-core/config"
	"mercato-core/internal/core/ports"
	"mercato-core/pkg/apperror"
)

// HTTPGateway implements ports.PaymentGateway against the provider's REST
// API. Amounts cross the wire in cents, same as storage.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPGateway creates a gateway client from config.
func NewHTTPGateway(cfg config.GatewayConfig) *HTTPGateway {
	return &HTTPGateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type createOrderRequest struct {
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

type createOrderResponse struct {
	OrderID string `json:"order_id"`
}

type captureResponse struct {
	OrderID   string `json:"order_id"`
	Captured  bool   `json:"captured"`
	Reference string `json:"reference"`
}

// CreateOrder opens a gateway order for a committed transaction and returns
// the provider's order id.
func (g *HTTPGateway) CreateOrder(ctx context.Context, amount int64, reference string) (string, error) {
	body, err := json.Marshal(createOrderRequest{Amount: amount, Reference: reference})
	if err != nil {
		return "", fmt.Errorf("marshal create order: %w", err)
	}

	var resp createOrderResponse
	if err := g.post(ctx, "/v1/orders", body, &resp); err != nil {
		return "", err
	}
	return resp.OrderID, nil
}

// Capture settles a previously created order.
func (g *HTTPGateway) Capture(ctx context.Context, orderID string) (*ports.CaptureResult, error) {
	var resp captureResponse
	if err := g.post(ctx, "/v1/orders/"+orderID+"/capture", nil, &resp); err != nil {
		return nil, err
	}
	return &ports.CaptureResult{
		OrderID:   resp.OrderID,
		Captured:  resp.Captured,
		Reference: resp.Reference,
	}, nil
}

func (g *HTTPGateway) post(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return apperror.ErrExternalDependency("payment gateway", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperror.ErrExternalDependency("payment gateway",
			fmt.Errorf("status %d: %s", resp.StatusCode, raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.ErrExternalDependency("payment gateway",
			fmt.Errorf("decode response: %w", err))
	}
	return nil
}
