package immich

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/sirupsen/logrus"
)

// HTTP client configuration constants
const (
	defaultHTTPTimeout  = 600 * time.Second
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	retryBaseDelay      = 500 * time.Millisecond
	maxRetries          = 3
)

/**************************************************************************************************
** Client is a read-only Immich API client used as a photo source. It handles authentication,
** request retries and pagination; it never modifies the library.
**************************************************************************************************/
type Client struct {
	client     *http.Client
	apiURL     string
	apiKey     string
	retryDelay time.Duration
	logger     *logrus.Logger
}

/**************************************************************************************************
** NewClient creates a new Immich client with standard http package.
**
** @param apiURL - Base URL of the Immich server
** @param apiKey - API key for authentication
** @param logger - Logger instance for output
** @return *Client - Configured Immich client instance, nil when a parameter is missing or invalid
**************************************************************************************************/
func NewClient(apiURL, apiKey string, logger *logrus.Logger) *Client {
	if apiKey == "" {
		return nil
	}

	if apiURL == "" {
		return nil
	}

	if logger == nil {
		return nil
	}

	parsedURL, err := url.Parse(apiURL)
	if err != nil || parsedURL.Host == "" {
		return nil
	}

	baseURL := fmt.Sprintf("%s://%s/api", parsedURL.Scheme, parsedURL.Host)

	client := &http.Client{
		Timeout: defaultHTTPTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	}

	return &Client{
		client:     client,
		apiURL:     baseURL,
		apiKey:     apiKey,
		retryDelay: retryBaseDelay,
		logger:     logger,
	}
}

/**************************************************************************************************
** doRequest handles the HTTP request with retry logic and proper error handling.
** Transport failures are retried with a linear backoff; any non-2xx response fails immediately.
**
** @param method - HTTP method (GET, POST, etc.)
** @param path - API endpoint path
** @param body - Request body (optional)
** @param result - Pointer to store response data
** @return error - Any error that occurred during the request
**************************************************************************************************/
func (c *Client) doRequest(method, path string, body interface{}, result interface{}) error {
	var payload []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request body: %w", err)
		}
		payload = jsonBody
	}

	for i := 0; i < maxRetries; i++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequest(method, c.apiURL+path, bodyReader)
		if err != nil {
			return fmt.Errorf("error creating request: %w", err)
		}

		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if i == maxRetries-1 {
				return fmt.Errorf("error making request after %d retries: %w", maxRetries, err)
			}
			c.logger.Debugf("Request %s %s failed, retrying: %v", method, path, err)
			time.Sleep(c.retryDelay * time.Duration(i+1))
			continue
		}

		return decodeResponse(resp, result)
	}

	return fmt.Errorf("failed after %d retries", maxRetries)
}

func decodeResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result != nil {
			if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
				return fmt.Errorf("error decoding response: %w", err)
			}
		}
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("error response: %s - %s", resp.Status, string(body))
}

/**************************************************************************************************
** GetCurrentUser fetches the current user info using the API key (GET /users/me).
** Returns the user as utils.TUserResponse or an error.
**************************************************************************************************/
func (c *Client) GetCurrentUser() (utils.TUserResponse, error) {
	var user utils.TUserResponse
	if err := c.doRequest(http.MethodGet, "/users/me", nil, &user); err != nil {
		c.logger.Errorf("Error fetching current user: %v", err)
		return user, fmt.Errorf("error fetching current user: %w", err)
	}
	return user, nil
}

/**************************************************************************************************
** FetchAssets retrieves all image assets from Immich with pagination support, including their
** EXIF block. Trashed assets are skipped.
**
** @param size - Number of assets per page
** @param albumID - Restrict the search to one album, all albums when empty
** @return []utils.TImmichAsset - List of all assets
** @return error - Any error that occurred during the fetch
**************************************************************************************************/
func (c *Client) FetchAssets(size int, albumID string) ([]utils.TImmichAsset, error) {
	var allAssets []utils.TImmichAsset
	page := 1

	c.logger.Infof("⬇️  Fetching assets:")
	for {
		c.logger.Debugf("Fetching page %d", page)
		query := map[string]interface{}{
			"size":      size,
			"page":      page,
			"order":     "asc",
			"type":      "IMAGE",
			"isVisible": true,
			"withExif":  true,
		}
		if albumID != "" {
			query["albumIds"] = []string{albumID}
		}

		var response utils.TSearchResponse
		if err := c.doRequest(http.MethodPost, "/search/metadata", query, &response); err != nil {
			c.logger.Errorf("Error fetching assets: %v", err)
			return nil, fmt.Errorf("error fetching assets: %w", err)
		}

		for _, asset := range response.Assets.Items {
			if asset.IsTrashed {
				continue
			}
			allAssets = append(allAssets, asset)
		}

		// Handle string nextPage: empty string means no more pages
		if response.Assets.NextPage == "" || response.Assets.NextPage == "0" {
			break
		}
		nextPageInt, err := strconv.Atoi(response.Assets.NextPage)
		if err != nil || nextPageInt == 0 {
			break
		}
		page = nextPageInt
	}
	c.logger.Infof("🌄 %d assets fetched", len(allAssets))

	return allAssets, nil
}

/**************************************************************************************************
** FetchPhotos fetches assets and converts them to photo records.
**
** @param size - Number of assets per page
** @param albumID - Restrict the search to one album, all albums when empty
** @param loc - Timezone of the spot
** @return []utils.TPhotoRecord - Photo records in server order
** @return error - Any error that occurred during the fetch
**************************************************************************************************/
func (c *Client) FetchPhotos(size int, albumID string, loc *time.Location) ([]utils.TPhotoRecord, error) {
	assets, err := c.FetchAssets(size, albumID)
	if err != nil {
		return nil, err
	}

	records := make([]utils.TPhotoRecord, 0, len(assets))
	for _, asset := range assets {
		records = append(records, ToPhotoRecord(asset, loc))
	}
	return records, nil
}

/**************************************************************************************************
** ToPhotoRecord converts an Immich asset to a photo record.
**
** The capture time is the EXIF DateTimeOriginal instant. When it is missing, localDateTime is
** used instead: Immich encodes it as a UTC timestamp that really holds the local wall clock, so
** it is re-read in loc. Immich exposes no image direction, so Heading stays nil.
**
** @param asset - Immich asset
** @param loc - Timezone of the spot, UTC when nil
** @return utils.TPhotoRecord - Photo record
**************************************************************************************************/
func ToPhotoRecord(asset utils.TImmichAsset, loc *time.Location) utils.TPhotoRecord {
	if loc == nil {
		loc = time.UTC
	}

	record := utils.TPhotoRecord{
		ID:     asset.ID,
		Source: asset.OriginalPath,
	}
	if record.Source == "" {
		record.Source = asset.OriginalFileName
	}

	if asset.ExifInfo != nil {
		if t, err := time.Parse(time.RFC3339Nano, asset.ExifInfo.DateTimeOriginal); err == nil {
			captured := t.In(loc)
			record.CaptureInstant = &captured
		}
		if asset.ExifInfo.Latitude != nil && asset.ExifInfo.Longitude != nil {
			coord := utils.TGeoCoordinate{Latitude: *asset.ExifInfo.Latitude, Longitude: *asset.ExifInfo.Longitude}
			if coord.IsValid() {
				record.Location = &coord
			}
		}
	}

	if record.CaptureInstant == nil {
		if t, err := time.Parse(time.RFC3339Nano, asset.LocalDateTime); err == nil {
			wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
			record.CaptureInstant = &wall
		}
	}

	return record
}
