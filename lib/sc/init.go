package sc

import (
	"context"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/hexasonic/soundcloud/lib/cfg"
)

// Client issues authenticated requests against the API. It carries the
// client_id credential and the transport handles; both are fixed at
// construction, so a Client is safe for concurrent use and is meant to be
// created once and shared for the life of the process.
type Client struct {
	clientID string

	// api is pinned to the API host; transfer fetches download/stream
	// payloads, whose URLs may point at arbitrary CDN hosts.
	api      *fasthttp.HostClient
	transfer *fasthttp.Client
}

// NewClient constructs a Client using the provided client_id.
func NewClient(clientID string) *Client {
	dial := (&fasthttp.TCPDialer{DNSCacheDuration: cfg.DNSCacheTTL}).Dial

	return &Client{
		clientID: clientID,
		api: &fasthttp.HostClient{
			Addr:          cfg.APIHost + ":443",
			IsTLS:         true,
			DialDualStack: true,
			Dial:          dial,
		},
		transfer: &fasthttp.Client{
			DialDualStack:      true,
			Dial:               dial,
			StreamResponseBody: true,
		},
	}
}

// ClientID returns the client id.
func (c *Client) ClientID() string {
	return c.clientID
}

// Get issues an authenticated GET to the API host. A client_id parameter is
// always appended to params. The returned response comes from fasthttp's
// pool; the caller must release it with fasthttp.ReleaseResponse.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*fasthttp.Response, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.SetRequestURI("https://" + cfg.APIHost + path)
	req.Header.Set(fasthttp.HeaderUserAgent, cfg.UserAgent)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip, deflate, br, zstd")

	args := req.URI().QueryArgs()
	for key, vals := range params {
		for _, val := range vals {
			args.Add(key, val)
		}
	}
	args.Add("client_id", c.clientID)

	resp := fasthttp.AcquireResponse()
	if err := c.do(ctx, c.api.DoDeadline, req, resp); err != nil {
		fasthttp.ReleaseResponse(resp)
		return nil, httpError(err)
	}

	return resp, nil
}

// Resolve looks up the canonical API resource URL for any service URL
// (permalinks, short links and so on). The API answers with a redirect; the
// Location header is the result.
func (c *Client) Resolve(ctx context.Context, target string) (*url.URL, error) {
	resp, err := c.Get(ctx, "/resolve", url.Values{"url": {target}})
	if err != nil {
		return nil, err
	}
	defer fasthttp.ReleaseResponse(resp)

	loc := resp.Header.Peek(fasthttp.HeaderLocation)
	if len(loc) == 0 {
		return nil, apiError("expected location header")
	}

	// Header bytes are reused once the response is released, string() copies.
	u, err := url.Parse(string(loc))
	if err != nil {
		return nil, parseError(err)
	}

	return u, nil
}

// ParseURL parses raw and appends the client_id query parameter.
func (c *Client) ParseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", parseError(err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", uriError("not an absolute url: " + raw)
	}

	q := u.Query()
	q.Set("client_id", c.clientID)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

type deadlineDoer func(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error

// do maps the context onto fasthttp's deadline-based API. Cancellation is
// only observed at request boundaries (and between body chunks during
// transfers); fasthttp has no per-request context plumbing.
func (c *Client) do(ctx context.Context, doer deadlineDoer, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(cfg.RequestTimeout)
	}

	return doer(req, resp, deadline)
}

// errorPayload is the error shape the API returns alongside 4xx/5xx statuses.
type errorPayload struct {
	Errors []struct {
		Message string `json:"error_message"`
	} `json:"errors"`
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := c.Get(ctx, path, params)
	if err != nil {
		return err
	}
	defer fasthttp.ReleaseResponse(resp)

	data, err := resp.BodyUncompressed()
	if err != nil {
		data = resp.Body()
	}

	if code := resp.StatusCode(); code >= fasthttp.StatusBadRequest {
		var payload errorPayload
		if err := json.Unmarshal(data, &payload); err == nil && len(payload.Errors) > 0 && payload.Errors[0].Message != "" {
			return apiError(payload.Errors[0].Message)
		}
		return apiError("got status code " + strconv.Itoa(code))
	}

	// An absent body means an absent result; leave out at its zero value.
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return jsonError(err)
	}

	return nil
}
