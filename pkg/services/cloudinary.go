// cloudinary.go — Signed image upload to Cloudinary, used to host a
// finished raster before publication.
package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

const uploadFolder = "lemiddle-instagram"

// Uploader uploads images to Cloudinary and returns their public URLs.
type Uploader struct {
	CloudName string
	APIKey    string
	APISecret string

	BaseURL string // override for tests
	Client  *http.Client
}

// NewUploader creates an uploader from config.
func NewUploader(cfg Config) *Uploader {
	return &Uploader{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		BaseURL:   "https://api.cloudinary.com/v1_1",
		Client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// signature computes the upload signature: the SHA-1 hex digest of the
// alphabetically sorted parameters joined with '&', followed by the API
// secret.
func (u *Uploader) signature(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + u.APISecret))
	return hex.EncodeToString(sum[:])
}

// Upload sends the image at path and returns its secure URL. publicID
// is optional; when empty Cloudinary assigns one.
func (u *Uploader) Upload(ctx context.Context, path, publicID string) (string, error) {
	if u.CloudName == "" || u.APIKey == "" || u.APISecret == "" {
		return "", fmt.Errorf("cloudinary is not configured; set credentials in .env")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	signed := map[string]string{
		"folder":    uploadFolder,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	if publicID != "" {
		signed["public_id"] = publicID
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range signed {
		w.WriteField(k, v)
	}
	w.WriteField("api_key", u.APIKey)
	w.WriteField("signature", u.signature(signed))

	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", u.BaseURL, u.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		SecureURL string `json:"secure_url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode cloudinary response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("cloudinary upload %s: %s", resp.Status, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload: no secure_url in response")
	}

	return result.SecureURL, nil
}
