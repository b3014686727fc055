package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CoinGecko docs: https://docs.coingecko.com/
// Endpoint used: /simple/price?ids=<ids>&vs_currencies=usd&include_24hr_change=true

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

type CoinGecko struct {
	baseURL   string
	apiKey    string // optional
	userAgent string
	client    *http.Client
}

// cgResp keeps each asset raw so one malformed entry only zeroes that asset.
type cgResp map[string]json.RawMessage

func NewCoinGecko(baseURL, apiKey, userAgent string, timeout time.Duration) *CoinGecko {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &CoinGecko{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    strings.TrimSpace(apiKey),
		userAgent: userAgent,
		client: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
	}
}

func (c *CoinGecko) Name() string { return "coingecko" }

// PriceURL is the full request URL for the tracked assets.
func (c *CoinGecko) PriceURL() string {
	ids := make([]string, 0, len(Tracked))
	for _, s := range Tracked {
		ids = append(ids, s.AssetID())
	}
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")
	return fmt.Sprintf("%s/simple/price?%s", c.baseURL, q.Encode())
}

func (c *CoinGecko) Fetch(ctx context.Context) (Quotes, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PriceURL(), nil)
	if err != nil {
		return nil, c.fail(StageRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set("x-cg-pro-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.fail(StageTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, &FetchError{Provider: c.Name(), Stage: StageStatus, Status: resp.StatusCode}
	}

	var data cgResp
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, c.fail(StageDecode, err)
	}
	return data.quotes(), nil
}

func (c *CoinGecko) fail(stage string, err error) error {
	return &FetchError{Provider: c.Name(), Stage: stage, Err: err}
}

func (r cgResp) quotes() Quotes {
	out := make(Quotes, len(Tracked))
	for _, s := range Tracked {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(r[s.AssetID()], &fields); err != nil {
			out[s] = Quote{}
			continue
		}
		out[s] = Quote{
			Price:     numberOrZero(fields["usd"]),
			Change24h: numberOrZero(fields["usd_24h_change"]),
		}
	}
	return out
}

// numberOrZero decodes a JSON number; null, absent or any other type is 0.
func numberOrZero(raw json.RawMessage) float64 {
	var v *float64
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil || v == nil {
		return 0
	}
	return *v
}
