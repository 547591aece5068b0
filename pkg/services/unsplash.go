// unsplash.go — Stock photo search and download. The renderer receives
// only the decoded bytes; attribution data is surfaced for the caption.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// PresetQueries maps short query keys to full search queries that
// reliably return usable scenes.
var PresetQueries = map[string]string{
	"cafe_terrace":       "cafe terrace people",
	"coffee_shop":        "coffee shop friends",
	"bistro_paris":       "bistro paris terrace",
	"wine_bar":           "wine bar friends",
	"rooftop_bar":        "rooftop bar",
	"bar_night":          "bar people night",
	"happy_hour":         "happy hour drinks friends",
	"restaurant_friends": "restaurant friends dinner",
	"outdoor_dining":     "outdoor dining people",
	"brunch":             "brunch friends",
	"friends_drinking":   "friends drinks",
	"aperitif":           "aperitif outdoor",
}

// Photo is one search result with the fields the pipeline needs.
type Photo struct {
	ID               string
	Description      string
	URL              string // the "regular" size, suitable for a 1080px canvas
	AuthorName       string
	AuthorLink       string
	DownloadLocation string
}

// Unsplash searches and downloads stock photos.
type Unsplash struct {
	AccessKey string

	BaseURL string // override for tests
	Client  *http.Client
}

// NewUnsplash creates a client from config.
func NewUnsplash(cfg Config) *Unsplash {
	return &Unsplash{
		AccessKey: cfg.UnsplashKey,
		BaseURL:   "https://api.unsplash.com",
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *Unsplash) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		u.BaseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Client-ID "+u.AccessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := u.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unsplash %s: %s", endpoint, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Search returns up to perPage portrait photos for a query or preset key.
func (u *Unsplash) Search(ctx context.Context, query string, perPage int) ([]Photo, error) {
	if u.AccessKey == "" {
		return nil, fmt.Errorf("unsplash is not configured; set UNSPLASH_ACCESS_KEY in .env")
	}
	if full, ok := PresetQueries[query]; ok {
		query = full
	}
	if perPage <= 0 || perPage > 30 {
		perPage = 10
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "portrait")
	params.Set("per_page", fmt.Sprint(perPage))

	var body struct {
		Results []struct {
			ID             string `json:"id"`
			Description    string `json:"description"`
			AltDescription string `json:"alt_description"`
			URLs           struct {
				Regular string `json:"regular"`
			} `json:"urls"`
			User struct {
				Name  string `json:"name"`
				Links struct {
					HTML string `json:"html"`
				} `json:"links"`
			} `json:"user"`
			Links struct {
				DownloadLocation string `json:"download_location"`
			} `json:"links"`
		} `json:"results"`
	}
	if err := u.getJSON(ctx, "/search/photos", params, &body); err != nil {
		return nil, fmt.Errorf("search photos: %w", err)
	}

	photos := make([]Photo, 0, len(body.Results))
	for _, r := range body.Results {
		desc := r.Description
		if desc == "" {
			desc = r.AltDescription
		}
		photos = append(photos, Photo{
			ID:               r.ID,
			Description:      desc,
			URL:              r.URLs.Regular,
			AuthorName:       r.User.Name,
			AuthorLink:       r.User.Links.HTML,
			DownloadLocation: r.Links.DownloadLocation,
		})
	}
	return photos, nil
}

// Random searches for query and picks one result at random.
func (u *Unsplash) Random(ctx context.Context, query string) (Photo, error) {
	photos, err := u.Search(ctx, query, 10)
	if err != nil {
		return Photo{}, err
	}
	if len(photos) == 0 {
		return Photo{}, fmt.Errorf("no photos found for %q", query)
	}
	return photos[rand.Intn(len(photos))], nil
}

// Download fetches the photo bytes and reports the download to Unsplash
// as its API guidelines require. The trigger is best-effort.
func (u *Unsplash) Download(ctx context.Context, photo Photo) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photo.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := u.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download photo %s: %w", photo.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("download photo %s: %s", photo.ID, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download photo %s: %w", photo.ID, err)
	}

	u.triggerDownload(ctx, photo.DownloadLocation)

	return data, nil
}

// triggerDownload reports the download event, as the API guidelines
// require. Best-effort: failures are ignored.
func (u *Unsplash) triggerDownload(ctx context.Context, location string) {
	if location == "" {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Client-ID "+u.AccessKey)
	if resp, err := u.Client.Do(req); err == nil {
		resp.Body.Close()
	}
}
