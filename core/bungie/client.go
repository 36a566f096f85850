package bungie

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"loadout-manager/core/destiny"
	"loadout-manager/core/manifest"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
)

// Ensure Client implements manifest.Remote.
var _ manifest.Remote = (*Client)(nil)

// errorCodeSuccess is the PlatformErrorCodes value of a successful call.
const errorCodeSuccess = 1

// APIError is a non-successful platform response.
type APIError struct {
	StatusCode  int
	ErrorCode   int
	ErrorStatus string
	Message     string
}

func (e *APIError) Error() string {
	if e.ErrorStatus == "" {
		return fmt.Sprintf("bungie api: http %d", e.StatusCode)
	}
	return fmt.Sprintf("bungie api: %s (%d): %s", e.ErrorStatus, e.ErrorCode, e.Message)
}

type envelope[T any] struct {
	Response        T      `json:"Response"`
	ErrorCode       int    `json:"ErrorCode"`
	ErrorStatus     string `json:"ErrorStatus"`
	Message         string `json:"Message"`
	ThrottleSeconds int    `json:"ThrottleSeconds"`
}

type manifestResponse struct {
	Version                        string                       `json:"version"`
	JSONWorldComponentContentPaths map[string]map[string]string `json:"jsonWorldComponentContentPaths"`
}

// Client talks to the Bungie.net platform API.
type Client struct {
	baseURL string
	apiKey  string
	locale  string
	http    *http.Client
	limiter *RateLimiter
}

// NewClient creates a Client from the configuration.
func NewClient(cfg Config) (*Client, error) {
	if !cfg.IsValidLocale() {
		return nil, fmt.Errorf("unsupported locale %q", cfg.Locale)
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		locale:  cfg.Locale,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}, nil
}

// FetchManifestDescriptor returns the current manifest version and the
// content path of every component in the configured locale.
func (c *Client) FetchManifestDescriptor(ctx context.Context) (*manifest.Descriptor, error) {
	const op = "fetch manifest descriptor"

	resp, err := getPlatform[manifestResponse](ctx, c, "/Platform/Destiny2/Manifest/", nil)
	if err != nil {
		return nil, destiny.NewRemoteError(op, err)
	}

	paths, ok := resp.JSONWorldComponentContentPaths[c.locale]
	if !ok {
		return nil, destiny.NewRemoteError(op, fmt.Errorf("no content for locale %q", c.locale))
	}

	return &manifest.Descriptor{
		Version:        resp.Version,
		ComponentPaths: paths,
	}, nil
}

// FetchComponent downloads one manifest component. locator is a content path
// from the descriptor or an absolute URL.
func (c *Client) FetchComponent(ctx context.Context, name, locator string) (*manifest.ComponentData, error) {
	op := "fetch component " + name

	target := locator
	if !strings.HasPrefix(locator, "http://") && !strings.HasPrefix(locator, "https://") {
		target = c.baseURL + locator
	}

	body, err := c.do(ctx, target, nil)
	if err != nil {
		return nil, destiny.NewRemoteError(op, err)
	}
	defer body.Close()

	var table manifest.Table
	if err := json.NewDecoder(body).Decode(&table); err != nil {
		return nil, destiny.NewRemoteError(op, fmt.Errorf("decode: %w", err))
	}

	return &manifest.ComponentData{ComponentName: name, Data: table}, nil
}

// FetchProfile returns the account snapshot restricted to the given
// components. token may be nil for public profiles.
func (c *Client) FetchProfile(ctx context.Context, ref destiny.AccountRef, components []destiny.ComponentType, token *oauth2.Token) (*destiny.ProfileResponse, error) {
	const op = "fetch profile"

	selectors := make([]string, 0, len(components))
	for _, ct := range components {
		selectors = append(selectors, strconv.Itoa(int(ct)))
	}

	path := fmt.Sprintf("/Platform/Destiny2/%d/Profile/%s/?components=%s",
		ref.MembershipType, url.PathEscape(ref.MembershipID), strings.Join(selectors, ","))

	profile, err := getPlatform[destiny.ProfileResponse](ctx, c, path, token)
	if err != nil {
		return nil, destiny.NewRemoteError(op, err)
	}
	return profile, nil
}

// getPlatform performs a platform call and unwraps the response envelope.
func getPlatform[T any](ctx context.Context, c *Client, path string, token *oauth2.Token) (*T, error) {
	body, err := c.do(ctx, c.baseURL+path, token)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var env envelope[T]
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	c.limiter.Throttle(env.ThrottleSeconds)
	if env.ErrorCode != errorCodeSuccess {
		return nil, &APIError{
			StatusCode:  http.StatusOK,
			ErrorCode:   env.ErrorCode,
			ErrorStatus: env.ErrorStatus,
			Message:     env.Message,
		}
	}
	return &env.Response, nil
}

func (c *Client) do(ctx context.Context, target string, token *oauth2.Token) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if token != nil {
		token.SetAuthHeader(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Platform errors carry an envelope even on non-200 responses
		var env envelope[json.RawMessage]
		if json.NewDecoder(resp.Body).Decode(&env) == nil && env.ErrorStatus != "" {
			apiErr.ErrorCode = env.ErrorCode
			apiErr.ErrorStatus = env.ErrorStatus
			apiErr.Message = env.Message
			c.limiter.Throttle(env.ThrottleSeconds)
		}
		return nil, apiErr
	}

	return resp.Body, nil
}
