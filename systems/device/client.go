// Package device contains client of the relay device's output endpoint.
package device

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
	"github.com/go-home-io/panel/utils"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "device"

	// Path of the output endpoint.
	outputPath = "/output"

	// Form fields of the command request.
	formOutput = "output"
	formState  = "state"
)

// ConstructClient has data required for a new device client.
type ConstructClient struct {
	Logger     common.ILoggerProvider
	URL        string
	HTTPClient *http.Client
}

// Device client implementation.
// Requests are never retried.
type client struct {
	logger   common.ILoggerProvider
	endpoint string
	http     *http.Client
}

// NewClient constructs a new device client.
func NewClient(ctor *ConstructClient) (providers.IRemoteClient, error) {
	base, err := url.Parse(ctor.URL)
	if err != nil {
		return nil, errors.Wrap(err, "device url is invalid")
	}

	base.Path = strings.TrimSuffix(base.Path, "/") + outputPath

	c := &client{
		logger:   ctor.Logger,
		endpoint: base.String(),
		http:     ctor.HTTPClient,
	}

	if nil == c.http {
		c.http = http.DefaultClient
	}

	return c, nil
}

// FetchStates requests current states of all outputs.
func (c *client) FetchStates(ctx context.Context) ([]bool, error) {
	req, err := http.NewRequest(http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare request")
	}

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		return nil, &ErrRequestFailed{Method: http.MethodGet, Reason: err}
	}

	defer c.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.drainBody(resp.Body)
		return nil, &ErrRequestFailed{Method: http.MethodGet, Status: resp.StatusCode}
	}

	states := make(States, 0)
	if err := json.NewDecoder(resp.Body).Decode(&states); err != nil {
		return nil, errors.Wrap(err, "failed to decode output states")
	}

	return states, nil
}

// SendCommand sets a single output.
// Device's response body is not consulted.
func (c *client) SendCommand(ctx context.Context, index int, state bool) error {
	form := url.Values{}
	form.Set(formOutput, strconv.Itoa(index))
	form.Set(formState, utils.FormatSwitchState(state))

	req, err := http.NewRequest(http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to prepare request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		return &ErrRequestFailed{Method: http.MethodPost, Reason: err}
	}

	defer c.closeBody(resp.Body)
	c.drainBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ErrRequestFailed{Method: http.MethodPost, Status: resp.StatusCode}
	}

	return nil
}

// Reads the rest of the body so connection could be re-used.
func (c *client) drainBody(body io.Reader) {
	io.Copy(ioutil.Discard, body) // nolint: gosec, errcheck
}

// Makes an attempt to close response body.
func (c *client) closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		c.logger.Error("Failed to close response body", err, common.LogSystemToken, logSystem,
			common.LogURLToken, c.endpoint)
	}
}
