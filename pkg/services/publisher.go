// publisher.go — Instagram Graph API publication: create a media
// container from a hosted image URL, poll its processing status, then
// publish. Returns remote identifiers; scheduling and retries are the
// caller's concern.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const graphAPIBase = "https://graph.facebook.com/v18.0"

// Publisher publishes finished rasters through the Instagram Graph API.
type Publisher struct {
	AccountID   string
	AccessToken string

	BaseURL string // override for tests; defaults to the Graph API
	Client  *http.Client
}

// PublishResult reports the identifiers produced by a publish flow.
type PublishResult struct {
	ContainerID string
	MediaID     string
	Status      string // "published" or "timeout"
}

// NewPublisher creates a publisher from config.
func NewPublisher(cfg Config) *Publisher {
	return &Publisher{
		AccountID:   cfg.InstagramAccountID,
		AccessToken: cfg.InstagramToken,
		BaseURL:     graphAPIBase,
		Client:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *Publisher) postForm(ctx context.Context, endpoint string, form url.Values) (map[string]any, error) {
	form.Set("access_token", p.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return p.do(req)
}

func (p *Publisher) getJSON(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	params.Set("access_token", p.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.BaseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	return p.do(req)
}

func (p *Publisher) do(req *http.Request) (map[string]any, error) {
	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode graph response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("graph API %s: %s", resp.Status, graphErrorMessage(body))
	}
	return body, nil
}

// graphErrorMessage pulls the human-readable message out of a Graph API
// error body. Code 190 gets an actionable hint because it is by far the
// most common failure (expired page token).
func graphErrorMessage(body map[string]any) string {
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		return "unknown error"
	}
	msg, _ := errObj["message"].(string)
	if code, ok := errObj["code"].(float64); ok && int(code) == 190 {
		return msg + " (access token expired or invalid; refresh FACEBOOK_PAGE_ACCESS_TOKEN)"
	}
	return msg
}

// CreateContainer creates a media container for a hosted image and
// returns its id.
func (p *Publisher) CreateContainer(ctx context.Context, imageURL, caption string) (string, error) {
	form := url.Values{}
	form.Set("image_url", imageURL)
	form.Set("caption", caption)

	body, err := p.postForm(ctx, "/"+p.AccountID+"/media", form)
	if err != nil {
		return "", fmt.Errorf("create media container: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return "", fmt.Errorf("create media container: no id in response")
	}
	return id, nil
}

// ContainerStatus returns the container's status code (IN_PROGRESS,
// FINISHED, ERROR) and detail string.
func (p *Publisher) ContainerStatus(ctx context.Context, containerID string) (code, detail string, err error) {
	params := url.Values{}
	params.Set("fields", "status_code,status")

	body, err := p.getJSON(ctx, "/"+containerID, params)
	if err != nil {
		return "", "", fmt.Errorf("container status: %w", err)
	}

	code, _ = body["status_code"].(string)
	detail, _ = body["status"].(string)
	return code, detail, nil
}

// WaitReady polls the container at interval until it is FINISHED,
// errored, or maxWait elapses. Returns false on timeout.
func (p *Publisher) WaitReady(ctx context.Context, containerID string, maxWait, interval time.Duration) (bool, error) {
	deadline := time.Now().Add(maxWait)

	for time.Now().Before(deadline) {
		code, detail, err := p.ContainerStatus(ctx, containerID)
		if err != nil {
			return false, err
		}

		switch code {
		case "FINISHED":
			return true, nil
		case "ERROR":
			return false, fmt.Errorf("container processing failed: %s", detail)
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(interval):
		}
	}

	return false, nil
}

// PublishContainer publishes a ready container and returns the media id.
func (p *Publisher) PublishContainer(ctx context.Context, containerID string) (string, error) {
	form := url.Values{}
	form.Set("creation_id", containerID)

	body, err := p.postForm(ctx, "/"+p.AccountID+"/media_publish", form)
	if err != nil {
		return "", fmt.Errorf("publish media: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return "", fmt.Errorf("publish media: no id in response")
	}
	return id, nil
}

// Publish runs the full flow for an already-hosted image URL.
func (p *Publisher) Publish(ctx context.Context, imageURL, caption string) (PublishResult, error) {
	result := PublishResult{Status: "pending"}

	containerID, err := p.CreateContainer(ctx, imageURL, caption)
	if err != nil {
		return result, err
	}
	result.ContainerID = containerID

	ready, err := p.WaitReady(ctx, containerID, 60*time.Second, 5*time.Second)
	if err != nil {
		return result, err
	}
	if !ready {
		result.Status = "timeout"
		return result, nil
	}

	mediaID, err := p.PublishContainer(ctx, containerID)
	if err != nil {
		return result, err
	}
	result.MediaID = mediaID
	result.Status = "published"
	return result, nil
}
