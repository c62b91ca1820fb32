package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"apparel-storefront/internal/config"
)

type InitializeRequest struct {
	Email     string            `json:"email"`
	Amount    int64             `json:"amount"` // minor currency units
	Currency  string            `json:"currency"`
	Reference string            `json:"reference"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type InitializeResponse struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
}

type VerifyResponse struct {
	Reference string
	Status    string // "success", "abandoned", "failed"
	Amount    int64
	Currency  string
}

// PaymentClient talks to the hosted payment provider. The provider collects
// card details on its own pages; this side only initializes a transaction
// and verifies its outcome.
type PaymentClient interface {
	// Ready reports whether the provider is configured; checkout must not
	// proceed while it is false.
	Ready() bool
	Initialize(ctx context.Context, req *InitializeRequest) (*InitializeResponse, error)
	Verify(ctx context.Context, reference string) (*VerifyResponse, error)
}

type paymentClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
}

func NewPaymentClient(paymentCfg *config.Payment) PaymentClient {
	return &paymentClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: paymentCfg.BaseApiURL,
		secretKey:  paymentCfg.SecretKey,
	}
}

func (c *paymentClientImpl) Ready() bool {
	return c.baseApiURL != "" && c.secretKey != ""
}

func (c *paymentClientImpl) Initialize(ctx context.Context, initReq *InitializeRequest) (*InitializeResponse, error) {
	body, err := json.Marshal(initReq)
	if err != nil {
		return nil, fmt.Errorf("marshal initialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		c.baseApiURL+"/transaction/initialize", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment initialize returned status %d", resp.StatusCode)
	}

	var res struct {
		Status bool   `json:"status"`
		Msg    string `json:"message"`
		Data   struct {
			AuthorizationURL string `json:"authorization_url"`
			AccessCode       string `json:"access_code"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}
	if !res.Status {
		return nil, fmt.Errorf("payment initialize rejected: %s", res.Msg)
	}

	return &InitializeResponse{
		Reference:        res.Data.Reference,
		AuthorizationURL: res.Data.AuthorizationURL,
		AccessCode:       res.Data.AccessCode,
	}, nil
}

func (c *paymentClientImpl) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET",
		c.baseApiURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment verify returned status %d", resp.StatusCode)
	}

	var res struct {
		Status bool   `json:"status"`
		Msg    string `json:"message"`
		Data   struct {
			Reference string `json:"reference"`
			Status    string `json:"status"`
			Amount    int64  `json:"amount"`
			Currency  string `json:"currency"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	if !res.Status {
		return nil, fmt.Errorf("payment verify rejected: %s", res.Msg)
	}

	return &VerifyResponse{
		Reference: res.Data.Reference,
		Status:    res.Data.Status,
		Amount:    res.Data.Amount,
		Currency:  res.Data.Currency,
	}, nil
}
