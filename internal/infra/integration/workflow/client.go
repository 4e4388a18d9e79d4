package workflow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

// Client forwards submission payloads to the workflow-automation webhook.
// The endpoint is external and untrusted: calls get a hard timeout and no
// authentication header is attached. The response body is only logged.
type Client struct {
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Forward(ctx context.Context, url string, payload usecase.RelayPayload) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// The payload is relayed as received, empty fields included. The
	// automation target decides what an empty value means.
	for key, value := range payload.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to build relay body: %w", err)
		}
	}

	if payload.Resume != nil {
		part, err := writer.CreateFormFile("resume", payload.Resume.Filename)
		if err != nil {
			return fmt.Errorf("failed to attach resume: %w", err)
		}
		if _, err := part.Write(payload.Resume.Data); err != nil {
			return fmt.Errorf("failed to attach resume: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to build relay body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay returned %d: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("relay delivered to %s (%d)", url, resp.StatusCode)
	return nil
}
