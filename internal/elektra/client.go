// Package elektra is the client for the hotel-management booking API.
// Every call is a single round trip with no retries; a failed call
// surfaces immediately to the handler that made it.
package elektra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/perla-resort/booking-api/internal/models"
	"github.com/perla-resort/booking-api/internal/requestid"
)

// APIError is a non-2xx answer from the booking API. The body is kept
// verbatim because the vendor reports business conditions (expired
// price quotes, sold-out tariffs) as message text.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api returned %s: %s", e.Status, e.Body)
}

// IsPriceQuoteError reports whether err is the vendor's stale price
// quote rejection. The vendor only signals this through message text.
func IsPriceQuoteError(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "price quote")
}

// Client talks to the booking API for one fixed hotel.
type Client struct {
	baseURL    string
	hotelID    int
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, hotelID int, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		hotelID:    hotelID,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking api request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	// The vendor requires the header to be present, even empty, for
	// reservation update calls.
	req.Header.Set("x-captcha", "")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("booking api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.logger.ErrorContext(req.Context(), "booking api call failed",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode))
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(bodyBytes)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode booking api response: %w", err)
	}
	return nil
}

// HotelParams fetches the hotel's marketing metadata and images.
func (c *Client) HotelParams(ctx context.Context, language string) (*models.HotelParams, error) {
	path := fmt.Sprintf("/hotel/%d/params?language=%s", c.hotelID, url.QueryEscape(language))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var params models.HotelParams
	if err := c.do(req, &params); err != nil {
		return nil, fmt.Errorf("failed to fetch hotel params: %w", err)
	}
	return &params, nil
}

// Definitions fetches the room/board/rate type catalogs.
func (c *Client) Definitions(ctx context.Context, language string) (*models.Definitions, error) {
	path := fmt.Sprintf("/hotel/%d/hotel-definitions?language=%s&room-details=true",
		c.hotelID, url.QueryEscape(language))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var defs models.Definitions
	if err := c.do(req, &defs); err != nil {
		return nil, fmt.Errorf("failed to fetch hotel definitions: %w", err)
	}
	return &defs, nil
}

// PriceOffers fetches live availability and prices for a search. The
// result is real-time data and must never be cached. currency must
// already be normalized to a supported code.
func (c *Client) PriceOffers(ctx context.Context, search models.SearchParams, currency, language string) ([]models.PriceOffer, error) {
	query := url.Values{}
	query.Set("fromdate", search.FromDate)
	query.Set("todate", search.ToDate)
	query.Set("adult", strconv.Itoa(search.Adults))
	query.Set("currency", currency)
	query.Set("language", language)
	query.Set("onlybestoffer", "false")
	query.Set("childage", childAgeParam(search.Children))

	path := fmt.Sprintf("/hotel/%d/price?%s", c.hotelID, query.Encode())
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var offers []models.PriceOffer
	if err := c.do(req, &offers); err != nil {
		return nil, fmt.Errorf("failed to fetch price offers: %w", err)
	}

	c.logger.InfoContext(ctx, "price offers loaded",
		slog.Int("count", len(offers)),
		slog.String("fromdate", search.FromDate),
		slog.String("todate", search.ToDate),
		slog.String("currency", currency))
	return offers, nil
}

// childAgeParam joins in-range child ages into the comma-separated
// childage query value. The parameter is always sent, empty when there
// are no children, matching the vendor's expectations.
func childAgeParam(children []models.ChildAge) string {
	ages := make([]string, 0, len(children))
	for _, child := range children {
		if child.Age >= 1 && child.Age <= 17 {
			ages = append(ages, strconv.Itoa(child.Age))
		}
	}
	return strings.Join(ages, ",")
}

// CreateReservation submits a new booking.
func (c *Client) CreateReservation(ctx context.Context, reservation models.ReservationRequest) (*models.ReservationResponse, error) {
	body, err := json.Marshal(reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reservation request: %w", err)
	}

	path := fmt.Sprintf("/hotel/%d/createReservation", c.hotelID)
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result models.ReservationResponse
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	c.logger.InfoContext(ctx, "reservation created", slog.Int("reservation_id", result.ReservationID))
	return &result, nil
}

// UpdateReservation modifies an existing booking.
func (c *Client) UpdateReservation(ctx context.Context, reservation models.UpdateReservationRequest) (*models.UpdateReservationResponse, error) {
	body, err := json.Marshal(reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update reservation request: %w", err)
	}

	path := fmt.Sprintf("/hotel/%d/updateReservation", c.hotelID)
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result models.UpdateReservationResponse
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	c.logger.InfoContext(ctx, "reservation updated", slog.Int("reservation_id", result.ReservationID))
	return &result, nil
}
