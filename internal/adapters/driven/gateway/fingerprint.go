package gateway

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/gowebpki/jcs"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
)

// Truncation caps for fingerprint material. Two calls that differ only
// beyond these caps will collide; that risk is accepted, since a false
// positive merely delays one redundant call by the throttle window.
const (
	maxParamValueLen = 80
	maxBodyValueLen  = 32
	maxBodyKeys      = 10
)

// Fingerprint derives a stable identity for a request so that the same
// call repeated quickly always hashes to the same value.
//
// The material is: method, url, response type, Range header, the sorted
// query params (values capped), and the first 10 sorted body keys (values
// capped). It is canonicalised with JCS (RFC 8785) before hashing so that
// map ordering can never leak into the digest.
func Fingerprint(d *domain.RequestDescriptor) string {
	material := map[string]any{
		"method": strings.ToUpper(d.Method),
		"url":    d.URL,
		"type":   string(d.ResponseType),
		"range":  d.Header("Range"),
		"params": cappedValues(d.Params, maxParamValueLen),
		"body":   bodySummary(d.Body),
	}

	raw, err := json.Marshal(material)
	if err != nil {
		// Maps of strings cannot fail to marshal; body values are already
		// stringified below.
		return fallbackFingerprint(d)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return fallbackFingerprint(d)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:16])
}

// cappedValues returns a copy of m with each value truncated to limit.
func cappedValues(m map[string]string, limit int) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = truncate(v, limit)
	}
	return out
}

// bodySummary stringifies the first maxBodyKeys body keys in sorted order,
// capping each value. Deep payload structure is deliberately ignored; the
// summary only needs to separate "same call repeated" from "different
// call".
func bodySummary(body map[string]any) map[string]string {
	if len(body) == 0 {
		return nil
	}

	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxBodyKeys {
		keys = keys[:maxBodyKeys]
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = truncate(fmt.Sprintf("%v", body[k]), maxBodyValueLen)
	}
	return out
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// fallbackFingerprint keys on the coarse request identity when
// canonicalisation fails. Coarser than the full material, but still stable.
func fallbackFingerprint(d *domain.RequestDescriptor) string {
	sum := sha256.Sum256([]byte(strings.ToUpper(d.Method) + " " + d.URL + " " + string(d.ResponseType)))
	return hex.EncodeToString(sum[:16])
}
