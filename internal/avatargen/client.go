// Package avatargen calls the external image-edit provider that turns a
// profile picture into a Disney/Pixar-style portrait.
package avatargen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"avatar-mint-backend/internal/apperr"
)

// StylePrompt is the fixed transformation instruction sent with every request.
const StylePrompt = "Transform this person into a Disney/Pixar-style animated character portrait, keep facial identity and pose, clean soft shading, vibrant colors, high quality."

const (
	model        = "gpt-image-1"
	imageSize    = "1024x1024"
	outputFormat = "png"
)

type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

type generateResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Generate fetches the source image, submits it with the style prompt and
// returns the result as a PNG data URI. A single attempt, no retry: every
// failure is returned to the caller with nothing persisted.
func (c *Client) Generate(sourceImageURL, userID string) (string, error) {
	if c.apiURL == "" || c.apiKey == "" {
		return "", apperr.Configuration("avatar provider endpoint or credential is missing")
	}

	imageData, err := c.fetchSourceImage(sourceImageURL)
	if err != nil {
		return "", err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", "source.png")
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}

	writer.WriteField("prompt", StylePrompt)
	writer.WriteField("model", model)
	writer.WriteField("size", imageSize)
	writer.WriteField("output_format", outputFormat)
	writer.WriteField("user", userID)

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstreamProvider, "provider request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstreamProvider, "failed to read provider response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperr.New(apperr.KindUpstreamProvider,
			fmt.Sprintf("provider returned status %d: %s", resp.StatusCode, string(respBody)))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", apperr.Wrap(apperr.KindUpstreamProvider, "unparsable provider response", err)
	}

	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return "", apperr.New(apperr.KindUpstreamProvider, "provider response missing b64_json")
	}

	return "data:image/png;base64," + result.Data[0].B64JSON, nil
}

func (c *Client) fetchSourceImage(sourceImageURL string) ([]byte, error) {
	resp, err := c.httpClient.Get(sourceImageURL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamFetch, "failed to fetch source image", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperr.New(apperr.KindUpstreamFetch,
			fmt.Sprintf("failed to fetch source image: status %d: %s", resp.StatusCode, string(body)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstreamFetch, "failed to read source image", err)
	}

	return data, nil
}
