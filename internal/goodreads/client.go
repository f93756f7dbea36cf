// Package goodreads is the adapter for the external rating lookup service.
//
// The collaborator is consumed as an opaque HTTP endpoint: given an ISBN it
// returns review statistics including an average rating. Every failure mode
// (transport error, non-success status, malformed payload, empty result) is
// reported as an error so that callers can degrade to the rating sentinel
// instead of failing the whole request.
package goodreads

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/pamorimsa/project1-cs50w/internal/config"
	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/utils"
	"github.com/pamorimsa/project1-cs50w/models"
)

const reviewCountsPath = "/book/review_counts.json"

var (
	// ErrUnexpectedStatus is returned when the rating service responds with
	// a non-success HTTP status.
	ErrUnexpectedStatus = errors.New("rating service returned unexpected status")

	// ErrEmptyPayload is returned when the rating service responds
	// successfully but carries no entry for the requested ISBN.
	ErrEmptyPayload = errors.New("rating service returned no books")
)

// reviewCountsResponse mirrors the rating service payload. Only the first
// entry's average rating is ever consumed.
type reviewCountsResponse struct {
	Books []struct {
		AverageRating string `json:"average_rating"`
	} `json:"books"`
}

// Client looks up average ratings by ISBN.
type Client struct {
	http   *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

// NewClient constructs a rating [Client] from the given configuration.
//
// The underlying HTTP client carries the configured base URL and request
// timeout; an unresponsive collaborator therefore stalls a single lookup for
// at most cfg.Timeout before the caller degrades to the sentinel value.
func NewClient(cfg config.Ratings, log *logger.Logger) *Client {
	httpClient := utils.NewHTTPClient()
	httpClient.SetBaseURL(cfg.BaseURL)
	httpClient.SetTimeout(cfg.Timeout)

	return &Client{
		http:   httpClient,
		apiKey: cfg.APIKey,
		logger: log,
	}
}

// AverageRating fetches the average rating for the given ISBN.
//
// Returns an available [models.Rating] on success. Any failure (network
// error, non-2xx status, malformed body, empty books array) is returned as
// an error; callers are expected to treat every error as the
// rating-unavailable state.
func (c *Client) AverageRating(ctx context.Context, isbn string) (models.Rating, error) {
	var payload reviewCountsResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":   c.apiKey,
			"isbns": isbn,
		}).
		SetResult(&payload).
		Get(reviewCountsPath)
	if err != nil {
		return models.Rating{}, fmt.Errorf("rating lookup failed: %w", err)
	}

	if !resp.IsSuccess() {
		return models.Rating{}, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status())
	}

	if len(payload.Books) == 0 {
		return models.Rating{}, ErrEmptyPayload
	}

	average, err := strconv.ParseFloat(payload.Books[0].AverageRating, 64)
	if err != nil {
		return models.Rating{}, fmt.Errorf("malformed average rating %q: %w", payload.Books[0].AverageRating, err)
	}

	return models.NewRating(average), nil
}
