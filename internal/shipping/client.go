package shipping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopmart/shopmart/internal/models"
)

// default time of retry after
const delaySeconds = 60

// tracking statuses reported by the partner
const (
	TrackingStatusInTransit = "in_transit"
	TrackingStatusDelivered = "delivered"
)

// Client talks to the shipping partner tracking API.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates new shipping partner Client instance
func NewClient(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
	}
}

// TrackingStatus is the partner's view of one shipment.
type TrackingStatus struct {
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

// TooManyRequestsError is returned on partner rate limiting.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return "too many requests to shipping partner"
}

// GetTrackingStatus returns the delivery status for a tracking number.
func (c *Client) GetTrackingStatus(ctx context.Context, trackingNumber string) (*TrackingStatus, error) {
	// GET /api/tracking/{number}
	url, err := url.JoinPath(c.baseURL, "api", "tracking", trackingNumber)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		status := TrackingStatus{}
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			return nil, err
		}
		return &status, nil
	case http.StatusNotFound:
		return nil, models.ErrDataNotFound
	case http.StatusTooManyRequests:
		t := delaySeconds
		if val := resp.Header.Get("Retry-After"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				t = parsed
			}
		}
		return nil, TooManyRequestsError{RetryAfter: time.Duration(t) * time.Second}
	default:
		return nil, models.ErrExternalService
	}
}
