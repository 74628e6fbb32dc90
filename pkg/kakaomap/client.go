// Package kakaomap searches places through the Kakao Local API.
package kakaomap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"
)

// Client searches Kakao Local and caches results in memory.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
}

// New creates a Kakao Local client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("kakaomap: APIKey is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		cache:      cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}, nil
}

var preferenceQueries = map[string]preferenceQuery{
	"맛집":      {keyword: "맛집", category: CategoryRestaurant},
	"관광":      {keyword: "관광지", category: CategoryAttraction},
	"쇼핑":      {keyword: "쇼핑"},
	"문화체험":    {keyword: "문화시설", category: CategoryCulture},
	"자연/아웃도어": {keyword: "자연 공원"},
	"휴식":      {keyword: "카페 공원"},
}

// SearchByPreference maps a travel preference to a keyword search in region.
// Preferences shaped "category: value" are searched by value. Unknown
// preferences are searched as plain keywords.
func (c *Client) SearchByPreference(ctx context.Context, region, preference string) ([]Place, error) {
	pref := strings.TrimSpace(preference)
	if i := strings.LastIndex(pref, ":"); i >= 0 {
		pref = strings.TrimSpace(pref[i+1:])
	}

	q, ok := preferenceQueries[pref]
	if !ok {
		q = preferenceQuery{keyword: pref}
	}
	return c.SearchKeyword(ctx, KeywordSearch{
		Keyword:           q.keyword,
		Region:            region,
		CategoryGroupCode: q.category,
		Size:              MaxPageSize,
	})
}

// SearchKeyword calls search/keyword.json.
func (c *Client) SearchKeyword(ctx context.Context, req KeywordSearch) ([]Place, error) {
	query := req.Keyword
	if req.Region != "" {
		query = req.Region + " " + req.Keyword
	}
	size := req.Size
	if size <= 0 || size > MaxPageSize {
		size = MaxPageSize
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("size", strconv.Itoa(size))
	params.Set("page", strconv.Itoa(page))
	if req.CategoryGroupCode != "" {
		params.Set("category_group_code", req.CategoryGroupCode)
	}

	key := "search/keyword.json?" + params.Encode()
	if cached, found := c.cache.Get(key); found {
		return cached.([]Place), nil
	}

	places, err := c.get(ctx, "search/keyword.json", params)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, places, cache.DefaultExpiration)
	return places, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]Place, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("kakaomap: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("kakaomap: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakaomap: API error %d", resp.StatusCode)
	}

	var body keywordResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("kakaomap: failed to decode response: %w", err)
	}

	places := make([]Place, 0, len(body.Documents))
	for _, d := range body.Documents {
		x, _ := strconv.ParseFloat(d.X, 64)
		y, _ := strconv.ParseFloat(d.Y, 64)
		places = append(places, Place{
			ID:          d.ID,
			Name:        d.PlaceName,
			Category:    d.CategoryName,
			Address:     d.AddressName,
			RoadAddress: d.RoadAddressName,
			Phone:       d.Phone,
			URL:         d.PlaceURL,
			X:           x,
			Y:           y,
		})
	}
	return places, nil
}
