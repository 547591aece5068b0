// replicate.go — AI photo generation through the Replicate predictions
// API: create a prediction for a prompt, poll until it settles, return
// the output image URL.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Available model identifiers.
var replicateModels = map[string]string{
	"flux_schnell": "black-forest-labs/flux-schnell",
	"flux_dev":     "black-forest-labs/flux-dev",
}

// Style fragments appended to prompts for a consistent photographic look.
var stylePrompts = map[string]string{
	"cafe_terrace": "Parisian cafe terrace, warm afternoon golden hour light, candid moment, film photography aesthetic, shallow depth of field, vintage color grading, 35mm film grain",
	"wine_bar":     "Cozy Parisian wine bar interior, soft ambient lighting, intimate atmosphere, editorial style photography, warm tones",
	"bistro":       "Classic French bistro scene, romantic evening lighting, authentic Parisian vibe, documentary photography style",
}

const defaultStyleSuffix = "warm natural lighting, candid authentic moment, film photography style, editorial quality, 35mm aesthetic"

// Replicate generates photos from text prompts.
type Replicate struct {
	Token string
	Model string

	BaseURL string // override for tests
	Client  *http.Client
}

// NewReplicate creates a client from config. Unknown model keys fall
// back to flux_schnell.
func NewReplicate(cfg Config, model string) *Replicate {
	name, ok := replicateModels[model]
	if !ok {
		name = replicateModels["flux_schnell"]
	}
	return &Replicate{
		Token:   cfg.ReplicateToken,
		Model:   name,
		BaseURL: "https://api.replicate.com/v1",
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// EnhancePrompt appends style details to a base prompt.
func EnhancePrompt(base, style string) string {
	suffix, ok := stylePrompts[style]
	if !ok {
		suffix = defaultStyleSuffix
	}
	return base + ", " + suffix + ", high quality, professional photography, well-lit"
}

type prediction struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output any    `json:"output"`
	Error  any    `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

// Generate creates an image for prompt and returns its URL, polling
// until the prediction settles or ctx expires.
func (r *Replicate) Generate(ctx context.Context, prompt, style string, width, height int) (string, error) {
	if r.Token == "" {
		return "", fmt.Errorf("replicate is not configured; set REPLICATE_API_TOKEN in .env")
	}

	payload := map[string]any{
		"input": map[string]any{
			"prompt":       EnhancePrompt(prompt, style),
			"width":        width,
			"height":       height,
			"aspect_ratio": fmt.Sprintf("%d:%d", width/gcd(width, height), height/gcd(width, height)),
		},
	}

	endpoint := fmt.Sprintf("%s/models/%s/predictions", r.BaseURL, r.Model)
	pred, err := r.request(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return "", fmt.Errorf("create prediction: %w", err)
	}

	for pred.Status == "starting" || pred.Status == "processing" {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(2 * time.Second):
		}

		pred, err = r.request(ctx, http.MethodGet, pred.URLs.Get, nil)
		if err != nil {
			return "", fmt.Errorf("poll prediction: %w", err)
		}
	}

	if pred.Status != "succeeded" {
		return "", fmt.Errorf("prediction %s: %v", pred.Status, pred.Error)
	}
	return firstOutputURL(pred.Output)
}

func (r *Replicate) request(ctx context.Context, method, endpoint string, payload any) (*prediction, error) {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+r.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("replicate: %s", resp.Status)
	}

	var pred prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("decode prediction: %w", err)
	}
	return &pred, nil
}

// firstOutputURL handles both output shapes the API produces: a single
// URL string or a list of them.
func firstOutputURL(output any) (string, error) {
	switch v := output.(type) {
	case string:
		return v, nil
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s, nil
			}
		}
	}
	return "", fmt.Errorf("prediction output has no image URL")
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
