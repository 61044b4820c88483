package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
)

const (
	statusOK            = "OK"
	statusZeroResults   = "ZERO_RESULTS"
	statusRequestDenied = "REQUEST_DENIED"
)

type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type response struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves address to the first result's coordinates.
func (c *Client) Geocode(ctx context.Context, address, apiKey string) (Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Coordinates{}, appErrors.ErrAddressRequired
	}
	if strings.TrimSpace(apiKey) == "" {
		return Coordinates{}, appErrors.ErrGeocodeMissingKey
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("build geocode request: %w", err)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	switch body.Status {
	case statusOK:
		if len(body.Results) == 0 {
			return Coordinates{}, appErrors.ErrGeocodeNoResults
		}
		return body.Results[0].Geometry.Location, nil
	case statusZeroResults:
		return Coordinates{}, appErrors.ErrGeocodeNoResults
	case statusRequestDenied:
		return Coordinates{}, &appErrors.GeocodeDeniedError{Reason: body.ErrorMessage}
	default:
		if body.ErrorMessage != "" {
			return Coordinates{}, fmt.Errorf("geocode failed with status %s: %s", body.Status, body.ErrorMessage)
		}
		return Coordinates{}, fmt.Errorf("geocode failed with status %s", body.Status)
	}
}

// ApplyToLocation sets both coordinates of loc on success and leaves them
// untouched on any error.
func (c *Client) ApplyToLocation(ctx context.Context, loc *model.StoreLocation, apiKey string) error {
	coords, err := c.Geocode(ctx, loc.Address, apiKey)
	if err != nil {
		return err
	}
	lat, lng := coords.Lat, coords.Lng
	loc.Latitude = &lat
	loc.Longitude = &lng
	return nil
}

// UserMessage is the text shown to an admin for a geocoding error.
func UserMessage(err error) string {
	var denied *appErrors.GeocodeDeniedError
	switch {
	case err == nil:
		return "Address located successfully"
	case errors.Is(err, appErrors.ErrAddressRequired):
		return "Please enter an address first"
	case errors.Is(err, appErrors.ErrGeocodeMissingKey):
		return "Please add a Google Maps API key before geocoding"
	case errors.Is(err, appErrors.ErrGeocodeNoResults):
		return "No results found for this address. Please check the address and try again."
	case errors.As(err, &denied):
		msg := "Geocoding request was denied. Please check that your API key has the Geocoding API enabled."
		if denied.Reason != "" {
			msg += " (" + denied.Reason + ")"
		}
		return msg
	default:
		return "Failed to geocode address"
	}
}
