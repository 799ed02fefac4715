package sc

import (
	"context"
	"io"
	"time"

	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/hexasonic/soundcloud/lib/cfg"
)

// Binary transfers. Both operations guard on the track's eligibility before
// touching the network, follow at most one redirect, and copy the payload to
// the caller's sink chunk by chunk.

// Download fetches the track's original file into w if the track is
// downloadable via the API, returning the number of bytes written.
func (c *Client) Download(ctx context.Context, track *Track, w io.Writer) (int64, error) {
	if !track.Downloadable || track.DownloadURL == nil {
		return 0, ErrTrackNotDownloadable
	}

	return c.transferTo(ctx, *track.DownloadURL, w)
}

// Stream fetches the track's stream_url payload into w if the track is
// streamable via the API, returning the number of bytes written.
func (c *Client) Stream(ctx context.Context, track *Track, w io.Writer) (int64, error) {
	if !track.Streamable || track.StreamURL == nil {
		return 0, ErrTrackNotStreamable
	}

	return c.transferTo(ctx, *track.StreamURL, w)
}

func (c *Client) transferTo(ctx context.Context, rawURL string, w io.Writer) (int64, error) {
	uri, err := c.ParseURL(rawURL)
	if err != nil {
		return 0, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.SetRequestURI(uri)
	req.Header.Set(fasthttp.HeaderUserAgent, cfg.UserAgent)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := c.do(ctx, c.transfer.DoDeadline, req, resp); err != nil {
		return 0, httpError(err)
	}

	// Follow the redirect just this once. The second response is consumed
	// as the payload even if it is itself a redirect.
	if loc := resp.Header.Peek(fasthttp.HeaderLocation); len(loc) > 0 {
		req.SetRequestURIBytes(loc)
		resp.CloseBodyStream() //nolint:errcheck // first hop carries no payload

		if err := ctx.Err(); err != nil {
			return 0, httpError(err)
		}
		deadline := time.Now().Add(cfg.RedirectTimeout)
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}
		if err := c.transfer.DoDeadline(req, resp, deadline); err != nil {
			return 0, httpError(err)
		}
	}

	return copyBody(ctx, w, resp)
}

// copyBody folds the response body into w, returning the running byte count.
// A sink failure stops the transfer immediately; nothing further is written.
func copyBody(ctx context.Context, w io.Writer, resp *fasthttp.Response) (int64, error) {
	if !resp.IsBodyStream() {
		if err := ctx.Err(); err != nil {
			return 0, httpError(err)
		}
		n, err := w.Write(resp.Body())
		if err != nil {
			return int64(n), ioError(err)
		}
		return int64(n), nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if cap(buf.B) < cfg.CopyChunkSize {
		buf.B = make([]byte, cfg.CopyChunkSize)
	}
	chunk := buf.B[:cfg.CopyChunkSize]

	body := resp.BodyStream()
	defer resp.CloseBodyStream() //nolint:errcheck

	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, httpError(err)
		}

		n, rerr := body.Read(chunk)
		if n > 0 {
			wn, werr := w.Write(chunk[:n])
			written += int64(wn)
			if werr != nil {
				return written, ioError(werr)
			}
		}

		switch rerr {
		case nil:
		case io.EOF:
			return written, nil
		default:
			return written, httpError(rerr)
		}
	}
}
