// Package admin is the client for the internal admin REST API. Every call
// carries the caller's session token; an optional delegated account id lets
// administrative tooling act on behalf of a customer account ("ghosting").
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

const (
	// SessionTokenHeader authenticates every upstream call.
	SessionTokenHeader = "X-Session-Token"
	// DelegatedAccountHeader asks the upstream service to act on behalf of
	// another account.
	DelegatedAccountHeader = "X-PN-Delegated-Account-ID"
)

// Config configures the admin client.
type Config struct {
	// BaseURL is the base URL of the admin service, e.g. https://admin.pubnub.com.
	BaseURL string
	// Timeout applies per call. Zero means 10s.
	Timeout time.Duration
	// PageLimit bounds every listing call. Zero means 100.
	PageLimit int
	Logger    zerolog.Logger
}

// Client issues authenticated requests against the admin API. It is stateless
// across requests: the session travels as an argument, never as client state.
type Client struct {
	rest      *resty.Client
	timeout   time.Duration
	pageLimit int
	log       zerolog.Logger
}

// New creates a new admin client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("admin: BaseURL is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("admin: BaseURL must be a valid URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pageLimit := cfg.PageLimit
	if pageLimit <= 0 {
		pageLimit = 100
	}

	rest := resty.New().
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json")

	return &Client{rest: rest, timeout: timeout, pageLimit: pageLimit, log: cfg.Logger}, nil
}

// PageLimit returns the listing page bound used by this client.
func (c *Client) PageLimit() int { return c.pageLimit }

// do executes one call with the per-call timeout and decodes the body into
// out. A missing response within the deadline is ErrTimeout; an HTTP status
// >= 400 is *UpstreamError.
func (c *Client) do(ctx context.Context, endpoint, method, path string, sess model.Session, delegated string, query map[string]string, body interface{}, out interface{}) error {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := c.rest.R().SetContext(callCtx)
	if sess.Token != "" {
		req.SetHeader(SessionTokenHeader, sess.Token)
	}
	if delegated != "" {
		req.SetHeader(DelegatedAccountHeader, delegated)
	}
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	err = c.wrap(endpoint, path, resp, err)
	observe(endpoint, err)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("admin: decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) wrap(endpoint, path string, resp *resty.Response, err error) error {
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return fmt.Errorf("%w: %s %s", ErrTimeout, endpoint, path)
		}
		return fmt.Errorf("admin: %s request: %w", endpoint, err)
	}
	if resp.StatusCode() >= 400 {
		ue := &UpstreamError{Status: resp.StatusCode(), Body: strings.TrimSpace(resp.String())}
		c.log.Debug().Str("endpoint", endpoint).Int("status", ue.Status).Msg("upstream error response")
		return ue
	}
	return nil
}

// Login exchanges email and password for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (model.Session, error) {
	var env struct {
		Result model.Session `json:"result"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, "login", resty.MethodPost, "/api/me", model.Session{}, "", nil, body, &env); err != nil {
		return model.Session{}, err
	}
	return env.Result, nil
}

// Accounts lists the accounts visible to the session's user. The session
// token identifies the user upstream; no extra parameters are needed.
func (c *Client) Accounts(ctx context.Context, sess model.Session, delegated string) ([]model.Account, error) {
	var env struct {
		Result struct {
			Accounts []model.Account `json:"accounts"`
		} `json:"result"`
	}
	if err := c.do(ctx, "accounts", resty.MethodGet, "/api/accounts", sess, delegated, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Result.Accounts, nil
}

// Apps lists the apps owned by the given account, keysets embedded.
func (c *Client) Apps(ctx context.Context, sess model.Session, ownerID int64, delegated string) ([]model.App, error) {
	var env struct {
		Result []model.App `json:"result"`
	}
	q := map[string]string{
		"owner_id": strconv.FormatInt(ownerID, 10),
		"limit":    strconv.Itoa(c.pageLimit),
	}
	if err := c.do(ctx, "apps", resty.MethodGet, "/api/apps", sess, delegated, q, nil, &env); err != nil {
		return nil, err
	}
	return env.Result, nil
}

// Keyset fetches one keyset by id.
func (c *Client) Keyset(ctx context.Context, sess model.Session, keyID int64, delegated string) (model.Keyset, error) {
	var env struct {
		Result model.Keyset `json:"result"`
	}
	path := "/api/keys/" + strconv.FormatInt(keyID, 10)
	if err := c.do(ctx, "keyset", resty.MethodGet, path, sess, delegated, nil, nil, &env); err != nil {
		return model.Keyset{}, err
	}
	return env.Result, nil
}

// Usage fetches usage metrics for one scope (key, app or account) and date
// range. The payload is passed through untouched.
func (c *Client) Usage(ctx context.Context, sess model.Session, scope string, id int64, start, end, delegated string) (json.RawMessage, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/usage/%s/%d", scope, id)
	q := map[string]string{"start": start, "end": end}
	if err := c.do(ctx, "usage", resty.MethodGet, path, sess, delegated, q, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Packages lists the serverless packages visible at account scope.
func (c *Client) Packages(ctx context.Context, sess model.Session, delegated string) ([]model.Package, error) {
	var env struct {
		Data []model.Package `json:"data"`
	}
	q := map[string]string{"limit": strconv.Itoa(c.pageLimit)}
	if err := c.do(ctx, "packages", resty.MethodGet, "/api/v2/functions/packages", sess, delegated, q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Revisions lists a package's revisions, newest first.
func (c *Client) Revisions(ctx context.Context, sess model.Session, packageID int64, delegated string) ([]model.Revision, error) {
	var env struct {
		Data []model.Revision `json:"data"`
	}
	path := fmt.Sprintf("/api/v2/functions/packages/%d/revisions", packageID)
	q := map[string]string{
		"limit": strconv.Itoa(c.pageLimit),
		"sort":  "created_at:desc",
	}
	if err := c.do(ctx, "revisions", resty.MethodGet, path, sess, delegated, q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Deployments lists a revision's deployments, newest first.
func (c *Client) Deployments(ctx context.Context, sess model.Session, packageID, revisionID int64, delegated string) ([]model.Deployment, error) {
	var env struct {
		Data []model.Deployment `json:"data"`
	}
	path := fmt.Sprintf("/api/v2/functions/packages/%d/revisions/%d/deployments", packageID, revisionID)
	q := map[string]string{
		"limit": strconv.Itoa(c.pageLimit),
		"sort":  "created_at:desc",
	}
	if err := c.do(ctx, "deployments", resty.MethodGet, path, sess, delegated, q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// EventListeners lists the event handlers configured on a subscribe key,
// actions embedded.
func (c *Client) EventListeners(ctx context.Context, sess model.Session, subscribeKey, delegated string) ([]model.EventListener, error) {
	var env struct {
		Data []model.EventListener `json:"data"`
	}
	q := map[string]string{
		"subscribe_key": subscribeKey,
		"limit":         strconv.Itoa(c.pageLimit),
	}
	if err := c.do(ctx, "event_listeners", resty.MethodGet, "/api/v2/event-handlers", sess, delegated, q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Ping checks upstream reachability for health probing. Any HTTP response,
// including an error status, proves the service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rest.R().SetContext(callCtx).Get("/api/status")
	if err != nil {
		return fmt.Errorf("admin: ping: %w", err)
	}
	if resp.StatusCode() >= 500 {
		return fmt.Errorf("admin: ping status %d", resp.StatusCode())
	}
	return nil
}
