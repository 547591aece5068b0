package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseGeneratedCopyPlainJSON(t *testing.T) {
	out, err := parseGeneratedCopy(`{"text": "La ligne 13.", "caption": {"main": "m", "hashtags": ["lemiddle", "paris"]}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Text != "La ligne 13." {
		t.Errorf("text %q", out.Text)
	}
	if len(out.Caption.Hashtags) != 2 {
		t.Errorf("hashtags %v", out.Caption.Hashtags)
	}
}

func TestParseGeneratedCopySurroundingProse(t *testing.T) {
	reply := "Voici le JSON demandé :\n{\"number\": \"19\", \"unit\": \"minutes\", \"caption\": {\"main\": \"m\", \"hashtags\": []}}\nBonne journée !"
	out, err := parseGeneratedCopy(reply)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Number != "19" || out.Unit != "minutes" {
		t.Errorf("parsed %+v", out)
	}
}

func TestParseGeneratedCopyInjectsBrandHashtag(t *testing.T) {
	out, err := parseGeneratedCopy(`{"text": "t", "caption": {"main": "m", "hashtags": ["paris"]}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(out.Caption.Hashtags) == 0 || out.Caption.Hashtags[0] != brandHashtag {
		t.Errorf("brand hashtag missing: %v", out.Caption.Hashtags)
	}

	// Already present: not duplicated.
	out, _ = parseGeneratedCopy(`{"caption": {"hashtags": ["lemiddle"]}}`)
	if len(out.Caption.Hashtags) != 1 {
		t.Errorf("brand hashtag duplicated: %v", out.Caption.Hashtags)
	}
}

func TestParseGeneratedCopyNoJSON(t *testing.T) {
	if _, err := parseGeneratedCopy("désolé, je ne peux pas"); err == nil {
		t.Error("expected parse error")
	}
}

func TestGenerateQuoteRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "k" {
			t.Error("missing api key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("missing version header")
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["system"] == "" {
			t.Error("missing system prompt")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"text": `{"text": "généré", "caption": {"main": "m", "hashtags": []}}`},
			},
		})
	}))
	defer server.Close()

	gen := &TextGenerator{
		APIKey:  "k",
		Model:   "test-model",
		BaseURL: server.URL,
		Client:  server.Client(),
	}

	out, err := gen.GenerateQuote(context.Background(), "mythes")
	if err != nil {
		t.Fatalf("GenerateQuote: %v", err)
	}
	if out.Text != "généré" {
		t.Errorf("text %q", out.Text)
	}
}
