// Package content persists the content-record queue (posts.json) and
// formats publication captions. It is a boundary collaborator of the
// renderer: the renderer only ever sees a single record's fields.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusGenerated = "generated"
	StatusPublished = "published"
)

// Caption is the publication caption attached to a post.
type Caption struct {
	Main     string   `json:"main"`
	CTA      string   `json:"cta,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
}

// Post is one content record plus its pipeline state.
type Post struct {
	ID             string         `json:"id"`
	Type           string         `json:"type"` // "number", "quote", "photo"
	Status         string         `json:"status"`
	Content        map[string]any `json:"content"`
	Caption        Caption        `json:"caption"`
	GeneratedImage string         `json:"generated_image,omitempty"`
}

// Store is the on-disk post collection.
type Store struct {
	path string

	Posts []Post `json:"posts"`
}

// Load reads a posts.json file. A missing file yields an empty store; a
// malformed one yields an empty store plus a warning, so callers can
// degrade instead of aborting.
func Load(path string) (*Store, []string, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil, nil
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return &Store{path: path}, []string{
			fmt.Sprintf("malformed %s: %v, starting empty", path, err),
		}, nil
	}

	return s, nil, nil
}

// Save writes the store back to its path.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// ByID returns a pointer into the store for the post with the given id.
func (s *Store) ByID(id string) (*Post, bool) {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return &s.Posts[i], true
		}
	}
	return nil, false
}

// Filter returns pointers to posts matching the given status and type.
// Empty filter values match everything.
func (s *Store) Filter(status, postType string) []*Post {
	var out []*Post
	for i := range s.Posts {
		p := &s.Posts[i]
		if status != "" && p.Status != status {
			continue
		}
		if postType != "" && p.Type != postType {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FormatCaption assembles the publication caption: main text, optional
// call to action, then hashtags after a blank line.
func FormatCaption(c Caption) string {
	parts := []string{c.Main}

	if c.CTA != "" {
		parts = append(parts, c.CTA)
	}

	if len(c.Hashtags) > 0 {
		tags := make([]string, len(c.Hashtags))
		for i, tag := range c.Hashtags {
			tags[i] = "#" + tag
		}
		parts = append(parts, "", strings.Join(tags, " "))
	}

	return strings.Join(parts, "\n")
}
