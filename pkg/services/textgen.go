// textgen.go — Structured copy generation through the Anthropic Messages
// API: one call returns the text fields, caption, and hashtags for one
// post. Prompt content mirrors the editorial guidelines; prompt tuning
// beyond that is out of scope.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
	textgenModel     = "claude-sonnet-4-20250514"
	brandHashtag     = "lemiddle"
)

const textgenSystemPrompt = `Tu es un créateur de contenu pour Le Middle, une application web parisienne qui aide les groupes d'amis à trouver un lieu de rendez-vous équidistant en temps de trajet via les transports en commun.

TON & STYLE: moderne, urbain, légèrement sarcastique. Humour de plainte typiquement parisien, jamais méchant, toujours relatable. On parle de la galère des transports comme obstacle à la vie sociale.

RÈGLES: chaque texte doit être autonome, inciter au partage, et garder une pointe d'humour. Ne jamais mentionner de marques concurrentes.`

// GeneratedCopy is the structured output of one generation call.
type GeneratedCopy struct {
	Text     string `json:"text"`    // quote template body
	Context  string `json:"context"` // number template context line
	Number   string `json:"number"`  // number template numeral
	Unit     string `json:"unit"`    // number template unit line
	Caption  struct {
		Main     string   `json:"main"`
		Hashtags []string `json:"hashtags"`
	} `json:"caption"`
	Category string `json:"category"`
}

// TextGenerator produces post copy via the Anthropic Messages API.
type TextGenerator struct {
	APIKey string
	Model  string

	BaseURL string // override for tests
	Client  *http.Client
}

// NewTextGenerator creates a generator from config.
func NewTextGenerator(cfg Config) *TextGenerator {
	return &TextGenerator{
		APIKey:  cfg.AnthropicAPIKey,
		Model:   textgenModel,
		BaseURL: anthropicBaseURL,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateQuote produces copy for a quote post.
func (t *TextGenerator) GenerateQuote(ctx context.Context, category string) (*GeneratedCopy, error) {
	prompt := `Génère UNE SEULE nouvelle phrase punchy (2-3 lignes max) sur les réalités des trajets parisiens.` +
		categoryGuidance(category) + `

Réponds UNIQUEMENT avec un JSON valide au format:
{"text": "...", "caption": {"main": "...", "hashtags": ["lemiddle", "..."]}, "category": "..."}`
	return t.generate(ctx, prompt)
}

// GenerateNumber produces copy for a number post: a striking figure with
// its context and unit lines.
func (t *TextGenerator) GenerateNumber(ctx context.Context, category string) (*GeneratedCopy, error) {
	prompt := `Génère UN SEUL chiffre marquant sur les trajets parisiens, avec son contexte.` +
		categoryGuidance(category) + `

Réponds UNIQUEMENT avec un JSON valide au format:
{"context": "...", "number": "19", "unit": "...", "caption": {"main": "...", "hashtags": ["lemiddle", "..."]}, "category": "..."}`
	return t.generate(ctx, prompt)
}

// GeneratePhotoCaption produces only a caption, for photo posts.
func (t *TextGenerator) GeneratePhotoCaption(ctx context.Context, photoContext string) (*GeneratedCopy, error) {
	prompt := `Génère une caption Instagram (2-3 phrases) pour une photo d'ambiance`
	if photoContext != "" {
		prompt += ` : ` + photoContext
	}
	prompt += `.

Réponds UNIQUEMENT avec un JSON valide au format:
{"caption": {"main": "...", "hashtags": ["lemiddle", "..."]}}`
	return t.generate(ctx, prompt)
}

func categoryGuidance(category string) string {
	switch category {
	case "injustices":
		return "\nCatégorie: injustices du quotidien dans les transports."
	case "mythes":
		return "\nCatégorie: mensonges classiques et comportements typiques."
	case "redemption":
		return "\nCatégorie: solutions et moments positifs."
	default:
		return ""
	}
}

func (t *TextGenerator) generate(ctx context.Context, prompt string) (*GeneratedCopy, error) {
	if t.APIKey == "" {
		return nil, fmt.Errorf("text generation is not configured; set ANTHROPIC_API_KEY in .env")
	}

	payload := map[string]any{
		"model":      t.Model,
		"max_tokens": 1024,
		"system":     textgenSystemPrompt,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+"/messages", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", t.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("messages request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("messages request: %s", resp.Status)
	}

	var body struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}
	if len(body.Content) == 0 {
		return nil, fmt.Errorf("messages response has no content")
	}

	copyOut, err := parseGeneratedCopy(body.Content[0].Text)
	if err != nil {
		return nil, err
	}
	return copyOut, nil
}

// parseGeneratedCopy decodes the model's JSON reply, tolerating
// surrounding prose by extracting the outermost brace pair. The brand
// hashtag is always present in the result.
func parseGeneratedCopy(text string) (*GeneratedCopy, error) {
	text = strings.TrimSpace(text)

	var out GeneratedCopy
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("no JSON object in reply: %.80q", text)
		}
		if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
			return nil, fmt.Errorf("parse generated copy: %w", err)
		}
	}

	if !containsTag(out.Caption.Hashtags, brandHashtag) {
		out.Caption.Hashtags = append([]string{brandHashtag}, out.Caption.Hashtags...)
	}
	return &out, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
