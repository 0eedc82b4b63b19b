package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// CastMember is one credited actor returned by the metadata API.
type CastMember struct {
	Name        string `json:"name"`
	AwardWinner bool   `json:"awardWinner"`
}

// TitleMetadata is the external metadata record for a produced screenplay.
type TitleMetadata struct {
	Title  string       `json:"title"`
	Year   int          `json:"year"`
	Rating float64      `json:"rating"`
	Genres []string     `json:"genres"`
	Cast   []CastMember `json:"cast"`
}

// MetadataClient looks up title metadata from an external HTTP API.
//
// A MetadataClient should be created using NewMetadataClient.
type MetadataClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewMetadataClientParams defines the configuration for a MetadataClient.
//
// BaseURL is the root of the metadata API, without a trailing slash.
// APIKey is sent as a bearer token when non-empty.
// HTTPClient overrides the default client, mainly for tests.
type NewMetadataClientParams struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewMetadataClient creates a metadata API client.
func NewMetadataClient(params NewMetadataClientParams) *MetadataClient {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &MetadataClient{
		baseURL: params.BaseURL,
		apiKey:  params.APIKey,
		http:    httpClient,
	}
}

// LookupTitle fetches metadata for a title. Year narrows the match when
// non-zero. A 404 from the API is returned as ErrTitleNotFound.
func (c *MetadataClient) LookupTitle(ctx context.Context, title string, year int) (*TitleMetadata, error) {
	endpoint := fmt.Sprintf("%s/v1/titles", c.baseURL)

	query := url.Values{}
	query.Set("title", title)
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrTitleNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("metadata API returned status %d", resp.StatusCode)
	}

	metadata := new(TitleMetadata)
	if err := json.NewDecoder(resp.Body).Decode(metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata response: %w", err)
	}

	return metadata, nil
}
