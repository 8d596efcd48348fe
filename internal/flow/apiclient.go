package flow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"avatar-mint-backend/internal/models"
)

// APIClient implements the controller's Generator and MintRecorder ports
// against the service's own HTTP boundary.
type APIClient struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

func NewAPIClient(baseURL, authToken string) *APIClient {
	return &APIClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (a *APIClient) Generate(req models.GenerateRequest) (*models.GenerateResponse, error) {
	var resp models.GenerateResponse
	if err := a.post("/api/generate-character", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *APIClient) RecordMint(req models.MintConfirmRequest) (string, error) {
	var resp models.MintConfirmResponse
	if err := a.post("/api/mint", req, &resp); err != nil {
		return "", err
	}
	return resp.MintID, nil
}

func (a *APIClient) post(path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", a.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+a.authToken)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
