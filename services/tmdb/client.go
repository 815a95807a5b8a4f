package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// Minimal TMDB v3 client (api-key auth, trending/genre/detail endpoints we need)

const defaultBaseURL = "https://api.themoviedb.org/3"

// ErrAPIKeyMissing is returned before any network call when the client has no
// configured API key.
var ErrAPIKeyMissing = errors.New("tmdb: API key is not configured")

// StatusError is a non-OK upstream response. Code is forwarded to our own
// callers so the HTTP layer can mirror the upstream status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("TMDB Error: %s", e.Message)
	}
	return fmt.Sprintf("TMDB Error: status %d", e.Code)
}

type client struct {
	apiKey   string
	language string
	baseURL  string
	httpc    *http.Client
}

func newClient(apiKey, language string, httpc *http.Client) *client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &client{
		apiKey:   apiKey,
		language: normalizeLanguage(language),
		baseURL:  defaultBaseURL,
		httpc:    httpc,
	}
}

func (c *client) isConfigured() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// normalizeLanguage converts loose language tags to TMDB's ll-RR form.
// Bare language codes get a US region ("en" -> "en-US").
func normalizeLanguage(lang string) string {
	lang = strings.TrimSpace(strings.ReplaceAll(lang, "_", "-"))
	if lang == "" {
		return "en-US"
	}
	parts := strings.SplitN(lang, "-", 2)
	code := strings.ToLower(parts[0])
	region := "US"
	if len(parts) == 2 && parts[1] != "" {
		region = strings.ToUpper(parts[1])
	}
	return code + "-" + region
}

// doGET issues one authenticated GET against the TMDB API and decodes the
// JSON body into v. Server errors and 429s are retried with backoff; other
// non-OK statuses surface immediately as a *StatusError.
func (c *client) doGET(ctx context.Context, path string, params url.Values, v any) error {
	if !c.isConfigured() {
		return ErrAPIKeyMissing
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint := c.baseURL + path + "?" + params.Encode()

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpc.Do(req)
			if err != nil {
				return fmt.Errorf("tmdb get %s: %w", path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 300 {
				statusErr := &StatusError{Code: resp.StatusCode}
				var upstream upstreamError
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
				if err := json.Unmarshal(body, &upstream); err == nil && upstream.StatusMessage != "" {
					statusErr.Message = upstream.StatusMessage
				} else {
					statusErr.Message = resp.Status
				}
				if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
					return statusErr
				}
				return retry.Unrecoverable(statusErr)
			}
			if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
				return retry.Unrecoverable(fmt.Errorf("tmdb decode %s: %w", path, err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(300*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("[tmdb] retrying %s (attempt %d): %v", path, n+1, err)
		}),
	)
}

// trending fetches one page of the trending feed. mediaType must be
// "movie", "tv" or "all"; timeWindow "day" or "week".
func (c *client) trending(ctx context.Context, mediaType, timeWindow string, page int) (*listResponse, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	var resp listResponse
	path := fmt.Sprintf("/trending/%s/%s", mediaType, timeWindow)
	if err := c.doGET(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// genreList fetches the full id -> name genre mapping for one media type.
func (c *client) genreList(ctx context.Context, mediaType string) ([]genre, error) {
	var resp genreListResponse
	if err := c.doGET(ctx, fmt.Sprintf("/genre/%s/list", mediaType), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// details fetches one full movie/tv payload with the appended sub-resources
// the detail normalizer consumes.
func (c *client) details(ctx context.Context, mediaType, id string) (*detailsResponse, error) {
	params := url.Values{}
	params.Set("append_to_response", "videos,credits,external_ids,content_ratings,release_dates")
	var resp detailsResponse
	if err := c.doGET(ctx, fmt.Sprintf("/%s/%s", mediaType, id), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
