package electionclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/pkg/json"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Client talks to the election service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client

	logger logrus.FieldLogger
}

func NewClient(injector *do.Injector) (*Client, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimSuffix(config.ServiceURL(), "/")
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: bad service url %q: %w", core.ErrInvalidInput, baseURL, err)
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: config.RequestTimeout()},
		logger:  logger.WithField("component", "electionclient.Client"),
	}, nil
}

func (c *Client) HealthCheck() error {
	c.logger.Debug("Client health check.")

	return nil
}

func (c *Client) Shutdown() error {
	c.http.CloseIdleConnections()

	return nil
}

// Ping checks that the election service answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := call[struct{}](ctx, c, http.MethodGet, "/health", nil, "")

	return err
}

func (c *Client) ListElections(ctx context.Context) ([]core.Election, error) {
	response, err := call[core.ElectionsResponse](ctx, c, http.MethodGet, "/elections", nil, "")
	if err != nil {
		return nil, err
	}

	return response.Elections, nil
}

func (c *Client) GetElections(ctx context.Context, ids []string) ([]core.Election, error) {
	query := url.Values{"ids": ids}

	response, err := call[core.ElectionsResponse](ctx, c, http.MethodGet, "/elections?"+query.Encode(), nil, "")
	if err != nil {
		return nil, err
	}

	return response.Elections, nil
}

func (c *Client) CreateElection(ctx context.Context, input core.CreateElectionInput) (core.CreateElectionOutput, error) { //nolint:lll
	return call[core.CreateElectionOutput](ctx, c, http.MethodPost, "/elections", input, "")
}

func (c *Client) WeakLogin(ctx context.Context, adminToken string) (string, error) {
	response, err := call[core.WeakLoginOutput](ctx, c, http.MethodPost, "/auth/weak-login",
		core.WeakLoginInput{AdminToken: adminToken}, "")
	if err != nil {
		return "", err
	}

	return response.AccessToken, nil
}

func (c *Client) StartElection(ctx context.Context, id string, accessToken string) error {
	_, err := call[struct{}](ctx, c, http.MethodPost, "/elections/"+url.PathEscape(id)+"/start", nil, accessToken)

	return err
}

func call[T any](ctx context.Context, c *Client, method, path string, body any, token string) (T, error) {
	var result T

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return result, err
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return result, fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set(core.AuthorizationHeaderName, core.BearerPrefix+token)
	}

	c.logger.WithFields(logrus.Fields{"method": method, "path": path}).Debug("Calling election service")

	resp, err := c.http.Do(req)
	if err != nil {
		return result, fmt.Errorf("%w: %w", core.ErrRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return result, statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("%w: %w", core.ErrRemote, err)
	}

	if len(data) == 0 {
		return result, nil
	}

	result, err = json.Unmarshal[T](data)
	if err != nil {
		return result, fmt.Errorf("%w: %w", core.ErrRemote, err)
	}

	return result, nil
}

func statusError(resp *http.Response) error {
	message := resp.Status

	if response, err := json.Decode[errorResponse](resp.Body); err == nil && response.Error != "" {
		message = response.Error
	}

	sentinel := errorForStatus(resp.StatusCode)

	message = strings.TrimPrefix(message, sentinel.Error()+": ")
	if message == sentinel.Error() {
		return sentinel
	}

	return fmt.Errorf("%w: %s", sentinel, message)
}

func errorForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return core.ErrInvalidInput
	case http.StatusUnauthorized:
		return core.ErrUnauthorized
	case http.StatusNotFound:
		return core.ErrElectionNotFound
	case http.StatusConflict:
		return core.ErrConflict
	default:
		return core.ErrRemote
	}
}
