package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store, warnings, err := Load(filepath.Join(t.TempDir(), "posts.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 || len(store.Posts) != 0 {
		t.Errorf("expected empty store, got %d posts, warnings %v", len(store.Posts), warnings)
	}
}

func TestLoadMalformedWarnsAndDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("malformed file must degrade, got error: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for malformed JSON")
	}
	if len(store.Posts) != 0 {
		t.Errorf("expected empty posts, got %d", len(store.Posts))
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")

	store := &Store{path: path, Posts: []Post{
		{
			ID:     "number_001",
			Type:   "number",
			Status: StatusDraft,
			Content: map[string]any{
				"context_text": "test",
				"number":       "19",
				"unit_text":    "minutes",
			},
			Caption: Caption{Main: "Le chiffre du jour.", Hashtags: []string{"lemiddle"}},
		},
		{ID: "quote_001", Type: "quote", Status: StatusPublished},
	}}
	if err := store.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, warnings, err := Load(path)
	if err != nil || len(warnings) != 0 {
		t.Fatalf("Load: %v %v", err, warnings)
	}
	if len(loaded.Posts) != 2 {
		t.Fatalf("got %d posts", len(loaded.Posts))
	}

	post, ok := loaded.ByID("number_001")
	if !ok {
		t.Fatal("number_001 missing")
	}
	if post.Content["number"] != "19" {
		t.Errorf("content field lost: %v", post.Content)
	}
}

func TestFilter(t *testing.T) {
	store := &Store{Posts: []Post{
		{ID: "a", Type: "number", Status: StatusDraft},
		{ID: "b", Type: "quote", Status: StatusDraft},
		{ID: "c", Type: "number", Status: StatusPublished},
	}}

	if got := store.Filter(StatusDraft, ""); len(got) != 2 {
		t.Errorf("draft filter: %d", len(got))
	}
	if got := store.Filter("", "number"); len(got) != 2 {
		t.Errorf("type filter: %d", len(got))
	}
	if got := store.Filter(StatusDraft, "number"); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("combined filter: %v", got)
	}
	if got := store.Filter("", ""); len(got) != 3 {
		t.Errorf("no filter: %d", len(got))
	}
}

func TestFormatCaption(t *testing.T) {
	full := Caption{
		Main:     "Moins de temps de trajet.",
		CTA:      "Lien en bio.",
		Hashtags: []string{"lemiddle", "paris"},
	}
	got := FormatCaption(full)
	want := "Moins de temps de trajet.\nLien en bio.\n\n#lemiddle #paris"
	if got != want {
		t.Errorf("caption:\n got %q\nwant %q", got, want)
	}

	bare := FormatCaption(Caption{Main: "Juste le texte."})
	if bare != "Juste le texte." {
		t.Errorf("bare caption %q", bare)
	}
}
