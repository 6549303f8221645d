package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrNotFound means the catalog definitively has no entry for the ISBN.
	ErrNotFound = errors.New("googlebooks: no volume for ISBN")
	// ErrUnavailable covers transport failures and upstream 5xx/429 responses.
	ErrUnavailable = errors.New("googlebooks: service unavailable")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

func NewClient(baseURL string, timeout time.Duration, rps int) *Client {
	if rps < 1 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  "libraryapi/1.0",
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// Metadata is the normalized subset of a volume used to build a Book.
type Metadata struct {
	Title         string
	Authors       []string
	Description   string
	Categories    []string
	PageCount     *int
	CoverImage    string
	PublishedDate string
	Publisher     string
	Language      string
}

// volumesResponse matches the volumes?q=isbn: search shape.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo volumeInfo `json:"volumeInfo"`
	} `json:"items"`
}

type volumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	PageCount     int      `json:"pageCount"`
	PublishedDate string   `json:"publishedDate"`
	Publisher     string   `json:"publisher"`
	Language      string   `json:"language"`
	ImageLinks    struct {
		ExtraLarge string `json:"extraLarge"`
		Large      string `json:"large"`
		Medium     string `json:"medium"`
		Small      string `json:"small"`
		Thumbnail  string `json:"thumbnail"`
	} `json:"imageLinks"`
}

// FetchByISBN performs one lookup. There is no retry on failure; the caller
// decides whether to surface the error as retryable.
func (c *Client) FetchByISBN(ctx context.Context, isbn string) (Metadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Metadata{}, err
	}

	u := c.baseURL + "?q=" + url.QueryEscape("isbn:"+isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Metadata{}, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Metadata{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Metadata{}, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	if body.TotalItems == 0 || len(body.Items) == 0 {
		return Metadata{}, fmt.Errorf("%w: %s", ErrNotFound, isbn)
	}

	return mapVolume(body.Items[0].VolumeInfo), nil
}

func mapVolume(v volumeInfo) Metadata {
	m := Metadata{
		Title:         v.Title,
		Authors:       v.Authors,
		Description:   v.Description,
		Categories:    v.Categories,
		CoverImage:    bestCover(v),
		PublishedDate: v.PublishedDate,
		Publisher:     v.Publisher,
		Language:      v.Language,
	}
	if m.Authors == nil {
		m.Authors = []string{}
	}
	if m.Categories == nil {
		m.Categories = []string{}
	}
	if v.PageCount > 0 {
		pc := v.PageCount
		m.PageCount = &pc
	}
	if m.Language == "" {
		m.Language = "en"
	}
	return m
}

// bestCover picks the largest available image.
func bestCover(v volumeInfo) string {
	for _, u := range []string{
		v.ImageLinks.ExtraLarge,
		v.ImageLinks.Large,
		v.ImageLinks.Medium,
		v.ImageLinks.Small,
		v.ImageLinks.Thumbnail,
	} {
		if u != "" {
			return u
		}
	}
	return ""
}
