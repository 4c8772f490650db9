// Package client talks to a WhiskyReview server: the public catalog over plain
// HTTP and the admin service over connect.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
	"droscher.com/WhiskyReview/pkg/api/v1/apiv1connect"
	"droscher.com/WhiskyReview/pkg/catalog"
)

// ErrNotFound matches an APIError with status 404.
var ErrNotFound = errors.New("not found")

// APIError is a non-200 answer from the catalog API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog api: %d %s", e.StatusCode, e.Code)
	}

	return fmt.Sprintf("catalog api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient, logger: logger}
}

func (c *Client) ListWhiskies(ctx context.Context, state catalog.State) (*apiv1.WhiskyPage, error) {
	var page apiv1.WhiskyPage
	if err := c.get(ctx, "/api/whiskies", state.Encode(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetWhisky(ctx context.Context, whiskyID uuid.UUID) (*apiv1.Whisky, error) {
	var whisky apiv1.Whisky
	if err := c.get(ctx, "/api/whiskies/"+whiskyID.String(), nil, &whisky); err != nil {
		return nil, err
	}

	return &whisky, nil
}

func (c *Client) Home(ctx context.Context) (*apiv1.Home, error) {
	var home apiv1.Home
	if err := c.get(ctx, "/api/home", nil, &home); err != nil {
		return nil, err
	}

	return &home, nil
}

func (c *Client) Reference(ctx context.Context, origins []uint) (*apiv1.Reference, error) {
	query := catalog.State{Filter: catalog.Filter{Origins: origins}}.Encode()

	var reference apiv1.Reference
	if err := c.get(ctx, "/api/reference", query, &reference); err != nil {
		return nil, err
	}

	return &reference, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: response.StatusCode}

		var body apiv1.ErrorResponse
		if decodeErr := json.NewDecoder(response.Body).Decode(&body); decodeErr == nil {
			apiErr.Code, apiErr.Message = body.Error, body.Message
		}

		c.logger.Debug("catalog request failed", zap.String("url", endpoint), zap.Int("status", response.StatusCode))

		return apiErr
	}

	return json.NewDecoder(response.Body).Decode(target)
}

// NewAdminClient returns an admin service client that sends token as a bearer
// token on every call.
func NewAdminClient(baseURL string, token string, httpClient *http.Client) apiv1connect.AdminServiceClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	bearer := connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				req.Header().Set("Authorization", "Bearer "+token)
			}

			return next(ctx, req)
		}
	})

	return apiv1connect.NewAdminServiceClient(httpClient, baseURL, connect.WithInterceptors(bearer))
}
