package sc

import "strconv"

// ErrorKind identifies one class of client failure. Callers are expected to
// switch on the kind (or use errors.Is against the exported sentinels) to
// decide remediation, e.g. to tell "not downloadable" apart from a network
// error.
type ErrorKind uint8

const (
	// KindAPI means the service returned a structured error payload or an
	// otherwise unusable response.
	KindAPI ErrorKind = iota + 1
	// KindParse means a URL could not be parsed.
	KindParse
	// KindJSON means a response body failed to decode into the expected shape.
	KindJSON
	// KindHTTP means the transport failed (connection, TLS, timeout).
	KindHTTP
	// KindInvalidFilter means a builder was given a filter value it cannot encode.
	KindInvalidFilter
	// KindIO means the caller-supplied sink rejected a write.
	KindIO
	// KindURI means a constructed request URI is invalid.
	KindURI
	// KindNotDownloadable and KindNotStreamable are detected before any
	// network call is made.
	KindNotDownloadable
	KindNotStreamable
)

func (k ErrorKind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindParse:
		return "parse"
	case KindJSON:
		return "json"
	case KindHTTP:
		return "http"
	case KindInvalidFilter:
		return "invalid filter"
	case KindIO:
		return "io"
	case KindURI:
		return "uri"
	case KindNotDownloadable:
		return "not downloadable"
	case KindNotStreamable:
		return "not streamable"
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

// Error is the failure type returned by every operation in this package.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // wrapped cause, may be nil
}

var (
	ErrTrackNotDownloadable = &Error{Kind: KindNotDownloadable}
	ErrTrackNotStreamable   = &Error{Kind: KindNotStreamable}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindAPI:
		return "soundcloud error: " + e.text()
	case KindParse:
		return "parse error: " + e.text()
	case KindJSON:
		return "json error: " + e.text()
	case KindHTTP:
		return "http error: " + e.text()
	case KindInvalidFilter:
		return "invalid filter: " + e.text()
	case KindIO:
		return "io error: " + e.text()
	case KindURI:
		return "uri error: " + e.text()
	case KindNotDownloadable:
		return "the track is not available for download"
	case KindNotStreamable:
		return "the track is not available for streaming"
	}
	return e.text()
}

func (e *Error) text() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind; when the target carries a message, the message must
// match too. Each kind is equal only to itself, so
// errors.Is(ErrTrackNotStreamable, ErrTrackNotDownloadable) is false in both
// directions.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	if t.Msg != "" && e.Msg != t.Msg {
		return false
	}
	return true
}

func apiError(msg string) *Error      { return &Error{Kind: KindAPI, Msg: msg} }
func invalidFilter(msg string) *Error { return &Error{Kind: KindInvalidFilter, Msg: msg} }
func parseError(err error) *Error     { return &Error{Kind: KindParse, Err: err} }
func jsonError(err error) *Error      { return &Error{Kind: KindJSON, Err: err} }
func httpError(err error) *Error      { return &Error{Kind: KindHTTP, Err: err} }
func ioError(err error) *Error        { return &Error{Kind: KindIO, Err: err} }
func uriError(msg string) *Error      { return &Error{Kind: KindURI, Msg: msg} }
