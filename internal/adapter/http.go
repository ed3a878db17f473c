package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/utils"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const hashHeader = "HashSHA256"

type httpGatewayClient struct {
	client *utils.HTTPClient

	hashKey string
	token   string

	logger *logger.Logger
}

// NewHTTPGatewayClient constructs the REST implementation of
// [GatewayClient]. address may omit the scheme. When hashKey is set request
// bodies are signed and response signatures are verified with it.
func NewHTTPGatewayClient(address string, timeout time.Duration, hashKey string, logger *logger.Logger) (GatewayClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	return &httpGatewayClient{client: client, hashKey: hashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpGatewayClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpGatewayClient) Token() string {
	return h.token
}

// Execute implements [GatewayClient] over POST /api/pipeline/execute.
func (h *httpGatewayClient) Execute(ctx context.Context, event *models.PipelineEvent) (*models.PipelineEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode pipeline event: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(hashHeader, utils.Sign(payload))
	}

	resp, err := req.Post("/api/pipeline/execute")
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if err = h.verify(ctx, resp); err != nil {
		return nil, err
	}

	var result models.PipelineEvent
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode pipeline event: %w", err)
	}
	return &result, nil
}

// GrantShare implements [GatewayClient].
func (h *httpGatewayClient) GrantShare(ctx context.Context, secureDataID, userID uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(sharePathParams(secureDataID, userID)).
		Post("/api/securedata/{id}/shares/{userID}")
	if err != nil {
		return fmt.Errorf("grant share request: %w", err)
	}
	return mapHTTPError(resp)
}

// RevokeShare implements [GatewayClient].
func (h *httpGatewayClient) RevokeShare(ctx context.Context, secureDataID, userID uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(sharePathParams(secureDataID, userID)).
		Delete("/api/securedata/{id}/shares/{userID}")
	if err != nil {
		return fmt.Errorf("revoke share request: %w", err)
	}
	return mapHTTPError(resp)
}

// Version implements [GatewayClient].
func (h *httpGatewayClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpGatewayClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// verify checks the response signature when a hash key is configured.
func (h *httpGatewayClient) verify(ctx context.Context, resp *resty.Response) error {
	if h.hashKey == "" {
		return nil
	}

	if !utils.Verify(resp.Body(), resp.Header().Get(hashHeader)) {
		logger.FromContext(ctx).Error().
			Str("func", "*httpGatewayClient.verify").
			Str("hash from response", resp.Header().Get(hashHeader)).
			Msg("hashes are not equal")
		return ErrIntegrityCheckFailed
	}
	return nil
}

func sharePathParams(secureDataID, userID uuid.UUID) map[string]string {
	return map[string]string{
		"id":     secureDataID.String(),
		"userID": userID.String(),
	}
}
