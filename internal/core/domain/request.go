package domain

import "strings"

// ResponseType describes the payload shape a caller expects back.
type ResponseType string

const (
	// ResponseJSON is the default structured response.
	ResponseJSON ResponseType = "json"
	// ResponseBlob is an opaque binary response (document downloads).
	ResponseBlob ResponseType = "blob"
	// ResponseArrayBuffer is a raw byte-buffer response.
	ResponseArrayBuffer ResponseType = "arraybuffer"
)

// IsBinary returns true for response types that carry raw bytes.
// Binary responses must never be deduplicated by the gateway.
func (rt ResponseType) IsBinary() bool {
	return rt == ResponseBlob || rt == ResponseArrayBuffer
}

// RequestDescriptor captures one outbound API call before it is handed to
// the gateway. Descriptors are built fresh per call and never persisted.
type RequestDescriptor struct {
	// Method is the HTTP verb.
	Method string
	// URL is the target path, relative to the API root.
	URL string
	// Params are query parameters. Key order is irrelevant.
	Params map[string]string
	// Headers are extra request headers, notably Range and Authorization.
	Headers map[string]string
	// Body is the structured payload, if any. Nil for GET/DELETE.
	Body map[string]any
	// RawBody is an opaque byte payload (file uploads). When set it is
	// sent verbatim and Body is ignored.
	RawBody []byte
	// Multipart marks the body as opaque binary form data (file uploads).
	// The gateway strips any explicit Content-Type for multipart bodies so
	// the transport can set its own boundary.
	Multipart bool
	// ResponseType is the expected payload shape. Empty means JSON.
	ResponseType ResponseType
	// BypassThrottle exempts this call from duplicate suppression.
	BypassThrottle bool
}

// Header returns the named header, matching case-insensitively.
func (d *RequestDescriptor) Header(name string) string {
	for k, v := range d.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// HasRange returns true if the descriptor carries a byte-range header.
// Ranged reads are partial-content traffic and must never be throttled.
func (d *RequestDescriptor) HasRange() bool {
	return d.Header("Range") != ""
}
